package cmd

import (
	"reflect"
	"testing"
)

func TestFilterPrefix(t *testing.T) {
	names := []string{"catppuccin", "cozy", "focus", "nord"}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", names},
		{"c", []string{"catppuccin", "cozy"}},
		{"no", []string{"nord"}},
		{"x", nil},
	}

	for _, tt := range tests {
		if got := filterPrefix(names, tt.prefix); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("filterPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestCommandTree(t *testing.T) {
	paths := [][]string{
		{"theme", "list"},
		{"theme", "show"},
		{"hypr", "workspaces"},
		{"hypr", "keyword"},
		{"preset", "apply"},
		{"sync", "stop"},
		{"config", "init"},
	}

	for _, p := range paths {
		c, _, err := rootCmd.Find(p)
		if err != nil {
			t.Errorf("Find(%v): %v", p, err)
			continue
		}
		if c.Name() != p[len(p)-1] {
			t.Errorf("Find(%v) = %s", p, c.Name())
		}
	}
}
