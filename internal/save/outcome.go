// Package save detects what the clipboard holds and persists it to a file the
// user picks.
package save

import (
	"errors"
	"fmt"

	"go.klb.dev/clipsave/internal/codec"
)

var (
	// ErrUnsupported means the clipboard held neither an image nor text.
	ErrUnsupported = errors.New("clipboard is empty or contains an unsupported format")

	// ErrCodec marks failures reported by the image encoder.
	ErrCodec = errors.New("image encoder failed")
)

// Status is the terminal state of a save.
type Status int

const (
	StatusSaved Status = iota
	StatusCanceled
	StatusFailed
	StatusUnsupported
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusCanceled:
		return "canceled"
	case StatusFailed:
		return "failed"
	case StatusUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Kind is the clipboard content kind a save handled.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

func (k Kind) title() string {
	switch k {
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	default:
		return "Clipboard"
	}
}

// Outcome is the result of one save attempt.
type Outcome struct {
	Status Status
	Kind   Kind
	Path   string
	Format codec.Format
	Err    error
}

func saved(kind Kind, path string, f codec.Format) Outcome {
	return Outcome{Status: StatusSaved, Kind: kind, Path: path, Format: f}
}

func canceled(kind Kind) Outcome {
	return Outcome{Status: StatusCanceled, Kind: kind}
}

func failed(kind Kind, path string, err error) Outcome {
	return Outcome{Status: StatusFailed, Kind: kind, Path: path, Err: err}
}

func unsupported() Outcome {
	return Outcome{Status: StatusUnsupported, Err: ErrUnsupported}
}

// Message is the one-line, human-readable report for o.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusSaved:
		return fmt.Sprintf("%s successfully saved to: %s", o.Kind.title(), o.Path)
	case StatusCanceled:
		return fmt.Sprintf("%s save canceled.", o.Kind.title())
	case StatusUnsupported:
		return "Clipboard is empty or contains an unsupported format."
	default:
		return fmt.Sprintf("Error saving %s: %v", o.Kind, o.Err)
	}
}
