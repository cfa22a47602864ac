// Package hyprland talks to a running Hyprland compositor over its
// control socket.
package hyprland

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Query names understood by the compositor.
const (
	QueryActiveWindow    = "activewindow"
	QueryActiveWorkspace = "activeworkspace"
	QueryWorkspaces      = "workspaces"
	QueryMonitors        = "monitors"
	QueryBinds           = "binds"
)

// Client issues commands and queries. Each call opens its own
// connection, so a Client is safe for concurrent use.
type Client struct {
	socket *Socket
}

// NewClient resolves the socket path from env. It fails with
// ErrNotRunning before any socket I/O when env has no signature.
func NewClient(env Env) (*Client, error) {
	path, err := SocketPath(env)
	if err != nil {
		return nil, err
	}
	return NewClientWithSocket(path), nil
}

// NewClientWithSocket creates a client for an explicit socket path.
func NewClientWithSocket(path string) *Client {
	return &Client{socket: NewSocket(path)}
}

// SocketPath returns the socket the client talks to.
func (c *Client) SocketPath() string {
	return c.socket.Path()
}

// Send passes a raw command through and returns the response text.
func (c *Client) Send(cmd string) (string, error) {
	resp, err := c.socket.Send(cmd)
	if err != nil {
		return "", err
	}
	return string(resp), nil
}

// Query sends `j/<name>` and returns the raw JSON response.
func (c *Client) Query(name string) ([]byte, error) {
	return c.socket.Send("j/" + name)
}

func (c *Client) queryInto(name string, v any) error {
	resp, err := c.Query(name)
	if err != nil {
		return err
	}
	if !utf8.Valid(resp) {
		return &ParseError{Query: name, Err: ErrInvalidUTF8}
	}
	if bytes.Equal(bytes.TrimSpace(resp), []byte("null")) {
		return &ParseError{Query: name, Err: ErrNullResponse}
	}
	if err := json.Unmarshal(resp, v); err != nil {
		return &ParseError{Query: name, Err: err}
	}
	return nil
}

// ActiveWindow returns the focused window. With nothing focused the
// compositor answers {}, which is reported as a ParseError.
func (c *Client) ActiveWindow() (Window, error) {
	var w Window
	err := c.queryInto(QueryActiveWindow, &w)
	return w, err
}

// ActiveWorkspace returns the focused workspace.
func (c *Client) ActiveWorkspace() (Workspace, error) {
	var ws Workspace
	err := c.queryInto(QueryActiveWorkspace, &ws)
	return ws, err
}

// Workspaces returns all workspaces.
func (c *Client) Workspaces() ([]Workspace, error) {
	var ws []Workspace
	if err := c.queryInto(QueryWorkspaces, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// Monitors returns all monitors.
func (c *Client) Monitors() ([]Monitor, error) {
	var ms []Monitor
	if err := c.queryInto(QueryMonitors, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// Binds returns all registered keybindings.
func (c *Client) Binds() ([]Bind, error) {
	var bs []Bind
	if err := c.queryInto(QueryBinds, &bs); err != nil {
		return nil, err
	}
	return bs, nil
}

// Dispatch triggers a compositor action, e.g. Dispatch("workspace 2").
// The response is not inspected.
func (c *Client) Dispatch(args string) error {
	_, err := c.socket.Send("/dispatch " + args)
	return err
}

// Keyword sets a single live configuration option.
// The response is not inspected.
func (c *Client) Keyword(option, value string) error {
	if option == "" || strings.ContainsAny(option, " \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}
	_, err := c.socket.Send("keyword " + option + " " + value)
	return err
}

// Reload asks the compositor to reload its configuration.
func (c *Client) Reload() error {
	_, err := c.socket.Send("reload")
	return err
}
