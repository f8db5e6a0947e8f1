package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShouldUseColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, tc := range []struct {
		name string
		mode string
		env  map[string]string
		file *os.File
		want bool
	}{
		{name: "always", mode: "always", env: map[string]string{"NO_COLOR": "1"}, file: f, want: true},
		{name: "never", mode: "never", env: map[string]string{"CLICOLOR_FORCE": "1"}, file: f, want: false},
		{name: "no color", mode: "auto", env: map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, file: f, want: false},
		{name: "force", mode: "auto", env: map[string]string{"CLICOLOR_FORCE": "1"}, file: f, want: true},
		{name: "clicolor off", mode: "auto", env: map[string]string{"CLICOLOR": "0"}, file: f, want: false},
		{name: "regular file", mode: "auto", file: f, want: false},
		{name: "nil file", mode: "auto", want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"NO_COLOR", "CLICOLOR_FORCE", "CLICOLOR"} {
				t.Setenv(k, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := ShouldUseColor(tc.mode, tc.file); got != tc.want {
				t.Errorf("ShouldUseColor(%q) = %v, want %v", tc.mode, got, tc.want)
			}
		})
	}
}

func TestStyler(t *testing.T) {
	plain := Styler{}
	if got := plain.Accent("sort"); got != "sort" {
		t.Errorf("plain Accent = %q", got)
	}
	colored := Styler{Color: true}
	if got, want := colored.Error("bad"), "\x1b[38;5;203mbad\x1b[0m"; got != want {
		t.Errorf("Error = %q, want %q", got, want)
	}
	if got, want := colored.Muted("x"), "\x1b[38;5;245mx\x1b[0m"; got != want {
		t.Errorf("Muted = %q, want %q", got, want)
	}
}
