package hyprland

import "encoding/json"

// Records decoded from `j/` queries. They are snapshots, not live handles.

// WorkspaceRef identifies a workspace inside other records.
type WorkspaceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Window is the result of `j/activewindow`.
type Window struct {
	Address    string       `json:"address"`
	Title      string       `json:"title"`
	Class      string       `json:"class"`
	PID        int          `json:"pid"`
	Workspace  WorkspaceRef `json:"workspace"`
	Floating   bool         `json:"floating"`
	Fullscreen int          `json:"fullscreen"`
}

// Workspace is an element of `j/workspaces`, or the result of `j/activeworkspace`.
type Workspace struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Monitor string `json:"monitor"`
	Windows int    `json:"windows"`
}

// Monitor is an element of `j/monitors`.
type Monitor struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	X               int          `json:"x"`
	Y               int          `json:"y"`
	Scale           float64      `json:"scale"`
	ActiveWorkspace WorkspaceRef `json:"activeWorkspace"`
}

// Bind is an element of `j/binds`.
type Bind struct {
	Locked     bool   `json:"locked"`
	Mouse      bool   `json:"mouse"`
	Release    bool   `json:"release"`
	Repeat     bool   `json:"repeat"`
	ModMask    int    `json:"modmask"`
	Submap     string `json:"submap"`
	Key        string `json:"key"`
	KeyCode    int    `json:"keycode"`
	Dispatcher string `json:"dispatcher"`
	Arg        string `json:"arg"`
}

// Modifier bits of Bind.ModMask, as defined by wlroots.
const (
	ModShift = 1 << 0
	ModCaps  = 1 << 1
	ModCtrl  = 1 << 2
	ModAlt   = 1 << 3
	ModMod2  = 1 << 4
	ModMod3  = 1 << 5
	ModSuper = 1 << 6
	ModMod5  = 1 << 7
)

// Modifiers returns the names of the modifiers in the bind's mask.
func (b Bind) Modifiers() []string {
	names := []struct {
		bit  int
		name string
	}{
		{ModSuper, "SUPER"},
		{ModCtrl, "CTRL"},
		{ModAlt, "ALT"},
		{ModShift, "SHIFT"},
		{ModCaps, "CAPS"},
		{ModMod2, "MOD2"},
		{ModMod3, "MOD3"},
		{ModMod5, "MOD5"},
	}
	var mods []string
	for _, n := range names {
		if b.ModMask&n.bit != 0 {
			mods = append(mods, n.name)
		}
	}
	return mods
}

// requireFields fails unless data is an object carrying every named
// field with a non-null value.
func requireFields(data []byte, names ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return ErrNullResponse
	}
	for _, name := range names {
		if raw, ok := fields[name]; !ok || string(raw) == "null" {
			return &MissingFieldError{Field: name}
		}
	}
	return nil
}

// UnmarshalJSON requires an address.
func (w *Window) UnmarshalJSON(data []byte) error {
	type plain Window
	if err := requireFields(data, "address"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(w))
}

// UnmarshalJSON requires an id.
func (ws *Workspace) UnmarshalJSON(data []byte) error {
	type plain Workspace
	if err := requireFields(data, "id"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(ws))
}

// UnmarshalJSON requires an id.
func (m *Monitor) UnmarshalJSON(data []byte) error {
	type plain Monitor
	if err := requireFields(data, "id"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(m))
}
