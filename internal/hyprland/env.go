package hyprland

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables read by EnvFromOS.
const (
	SignatureEnv  = "HYPRLAND_INSTANCE_SIGNATURE"
	RuntimeDirEnv = "XDG_RUNTIME_DIR"
)

// DefaultRuntimeDir is used when XDG_RUNTIME_DIR is unset.
const DefaultRuntimeDir = "/run/user/1000"

const socketName = ".socket.sock"

// SocketLayout selects where the control socket lives.
type SocketLayout string

const (
	// LayoutRuntime is $XDG_RUNTIME_DIR/hypr/<signature>/.socket.sock,
	// used by current Hyprland releases. The path is not checked.
	LayoutRuntime SocketLayout = "runtime"

	// LayoutLegacy is /tmp/hypr/<signature>/.socket.sock, used by older
	// releases. The socket must already exist.
	LayoutLegacy SocketLayout = "legacy"
)

// Env holds the resolved discovery inputs for a compositor instance.
type Env struct {
	Signature  string
	RuntimeDir string
	Layout     SocketLayout
}

// EnvFromOS reads the discovery inputs from the process environment.
func EnvFromOS() Env {
	return Env{
		Signature:  os.Getenv(SignatureEnv),
		RuntimeDir: os.Getenv(RuntimeDirEnv),
		Layout:     LayoutRuntime,
	}
}

// SocketPath resolves the control socket path for env.
func SocketPath(env Env) (string, error) {
	if env.Signature == "" {
		return "", ErrNotRunning
	}

	switch env.Layout {
	case LayoutRuntime, "":
		runtimeDir := env.RuntimeDir
		if runtimeDir == "" {
			runtimeDir = DefaultRuntimeDir
		}
		return filepath.Join(runtimeDir, "hypr", env.Signature, socketName), nil
	case LayoutLegacy:
		path := filepath.Join("/tmp", "hypr", env.Signature, socketName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrSocketNotFound, path)
		}
		return path, nil
	default:
		return "", fmt.Errorf("unknown socket layout: %q", env.Layout)
	}
}
