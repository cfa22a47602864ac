package hyprland

import (
	"io"
	"net"

	"github.com/charmbracelet/log"
)

// Socket performs one request/response exchange per Send over the
// compositor's control socket.
//
// There is no framing: the response is everything read until the
// compositor closes the connection. A peer that keeps the connection open
// after answering will block Send indefinitely.
type Socket struct {
	path string
}

// NewSocket returns a transport for the socket at path. Nothing is opened.
func NewSocket(path string) *Socket {
	return &Socket{path: path}
}

// Path returns the socket path.
func (s *Socket) Path() string {
	return s.path
}

// Send writes cmd on a fresh connection and returns the full response.
func (s *Socket) Send(cmd string) ([]byte, error) {
	conn, err := net.Dial("unix", s.path)
	if err != nil {
		return nil, &TransportError{Op: OpConnect, Path: s.path, Err: err}
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, cmd); err != nil {
		return nil, &TransportError{Op: OpWrite, Path: s.path, Err: err}
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, &TransportError{Op: OpRead, Path: s.path, Err: err}
	}

	log.Debug("hyprland request", "cmd", cmd, "bytes", len(resp))
	return resp, nil
}
