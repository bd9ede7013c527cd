package readline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct{ in, want string }{
		{"~", home},
		{"~/.mal_history", filepath.Join(home, ".mal_history")},
		{"/tmp/h", "/tmp/h"},
		{"~other/h", "~other/h"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
