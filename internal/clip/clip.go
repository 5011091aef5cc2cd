// Package clip reads the system clipboard. Backends:
//
//	clip_system.go    golang.design/x/clipboard, text and PNG images
//	clip_text.go      github.com/atotto/clipboard, text only (xclip/xsel/wl-paste, pbpaste, Win32)
//	clip_headless.go  empty clipboard for hosts without a display
package clip

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"
)

// Reader is the interface all clipboard backends satisfy. Every call re-reads
// the live clipboard; nothing is cached between calls.
type Reader interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Image returns the decoded clipboard image.
	// Returns nil, nil if the clipboard holds no image.
	Image() (image.Image, error)

	// Text returns the clipboard text as raw bytes.
	// Returns nil, nil if the clipboard holds no text.
	Text() ([]byte, error)
}

// Mode selects a backend.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeSystem Mode = "system"
	ModeText   Mode = "text"
	ModeNone   Mode = "none"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeSystem, ModeText, ModeNone:
		return m, nil
	default:
		return "", fmt.Errorf("unknown clipboard backend %q (want auto|system|text|none)", s)
	}
}

// New returns the backend for mode. In auto mode the system backend is
// preferred; if it cannot initialise (no display, built without cgo) the
// text-only backend is used, and failing that the headless one.
func New(mode Mode) (Reader, error) {
	switch mode {
	case ModeSystem:
		return newSystemReader()
	case ModeText:
		return newTextReader()
	case ModeNone:
		return headlessReader{}, nil
	case ModeAuto, "":
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", mode)
	}

	r, err := newSystemReader()
	if err == nil {
		return r, nil
	}
	slog.Warn("system clipboard unavailable, falling back to text-only", "err", err)

	tr, err := newTextReader()
	if err == nil {
		return tr, nil
	}
	slog.Warn("clipboard unavailable, running headless", "err", err)
	return headlessReader{}, nil
}

// decodePNG turns the PNG bytes a backend hands back into an image.
func decodePNG(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}
