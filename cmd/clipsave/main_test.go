package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"go.klb.dev/clipsave/internal/save"
)

func TestReport(t *testing.T) {
	boom := errors.New("permission denied")
	tests := []struct {
		name    string
		o       save.Outcome
		wantOut string
		wantErr bool
	}{
		{"saved", save.Outcome{Status: save.StatusSaved, Kind: save.KindText, Path: "/tmp/a.txt"}, "Text successfully saved to: /tmp/a.txt\n", false},
		{"canceled", save.Outcome{Status: save.StatusCanceled, Kind: save.KindImage}, "Image save canceled.\n", false},
		{"unsupported", save.Outcome{Status: save.StatusUnsupported, Err: save.ErrUnsupported}, "Clipboard is empty or contains an unsupported format.\n", false},
		{"failed", save.Outcome{Status: save.StatusFailed, Kind: save.KindText, Err: boom}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := report(&out, tt.o)
			if (err != nil) != tt.wantErr {
				t.Fatalf("report err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, boom) {
				t.Fatalf("report err = %v, want it to wrap %v", err, boom)
			}
			if out.String() != tt.wantOut {
				t.Fatalf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestRootWithEmptyClipboard(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--clipboard", "none",
		"--output", dir,
		"--log-level", "error",
	})

	// A missing explicit config file is not a ConfigFileNotFoundError.
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing --config file")
	}

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--clipboard", "none", "--output", dir, "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Clipboard is empty") {
		t.Fatalf("stdout = %q", out.String())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("empty clipboard wrote %d files", len(entries))
	}
}

func TestRootRejectsUnknownPicker(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--clipboard", "none", "--picker", "gtk", "--log-level", "error"})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "unknown picker") {
		t.Fatalf("Execute err = %v, want unknown picker", err)
	}
}

func TestBindViperEnvAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "clipsave.toml")
	if err := os.WriteFile(cfg, []byte("picker = \"prompt\"\njpeg-quality = 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLIPSAVE_JPEG_QUALITY", "55")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", cfg}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	v := viper.New()
	if err := bindViper(cmd, v); err != nil {
		t.Fatalf("bindViper: %v", err)
	}
	if got := v.GetString("picker"); got != "prompt" {
		t.Fatalf("picker = %q, want prompt from config file", got)
	}
	if got := v.GetInt("jpeg-quality"); got != 55 {
		t.Fatalf("jpeg-quality = %d, want 55 from env", got)
	}
	if got := v.GetString("clipboard"); got != "auto" {
		t.Fatalf("clipboard = %q, want flag default", got)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "clipsave dev\n" {
		t.Fatalf("version output = %q", got)
	}
}
