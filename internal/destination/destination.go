// Package destination asks the user where a file should be saved.
package destination

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrCanceled is returned by a Selector when the user dismisses the picker.
var ErrCanceled = errors.New("save canceled")

// Filter is one entry in the picker's file-type list. Filters are advisory:
// the chosen path is returned as typed.
type Filter struct {
	Label    string
	Patterns []string
	MIMEType string
}

// Request describes a save-target prompt.
type Request struct {
	Title       string
	DefaultName string
	Filters     []Filter
}

// Selector picks a destination path. Choose blocks until the user accepts
// or cancels; a cancellation is reported as ErrCanceled.
type Selector interface {
	Choose(req Request) (string, error)
}

// Kind names a Selector implementation.
type Kind string

const (
	KindNative Kind = "native"
	KindPrompt Kind = "prompt"
)

// New returns the selector for kind. A non-empty output short-circuits the
// picker entirely.
func New(kind Kind, output string) (Selector, error) {
	if output != "" {
		return Fixed{Path: output}, nil
	}
	switch Kind(strings.ToLower(string(kind))) {
	case KindNative, "":
		return Native{}, nil
	case KindPrompt:
		return Prompt{}, nil
	default:
		return nil, fmt.Errorf("unknown picker %q (want native|prompt)", kind)
	}
}

// Fixed always answers with Path. If Path names an existing directory the
// request's default name is joined onto it.
type Fixed struct {
	Path string
}

func (f Fixed) Choose(req Request) (string, error) {
	path := expandHome(f.Path)
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, req.DefaultName)
	}
	return filepath.Abs(path)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// describe renders filters as "PNG Image (*.png), JPEG Image (*.jpg, *.jpeg)".
func describe(filters []Filter) string {
	labels := make([]string, 0, len(filters))
	for _, f := range filters {
		labels = append(labels, f.Label)
	}
	return strings.Join(labels, ", ")
}
