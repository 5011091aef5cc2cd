package save

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.klb.dev/clipsave/internal/destination"
)

// TextFileName is the name suggested for text saves.
const TextFileName = "clipboard_text.txt"

var textRequest = destination.Request{
	Title:       "Save Text File",
	DefaultName: TextFileName,
	Filters: []destination.Filter{
		{Label: "Text Files (*.txt)", Patterns: []string{"*.txt"}, MIMEType: "text/plain"},
	},
}

// TextPersister writes clipboard text verbatim.
type TextPersister struct {
	Selector destination.Selector
}

// Save asks for a destination and writes text to it in one pass. A file that
// fails mid-write is left as is.
func (p *TextPersister) Save(text []byte) Outcome {
	path, err := p.Selector.Choose(textRequest)
	if errors.Is(err, destination.ErrCanceled) {
		slog.Info("text save canceled")
		return canceled(KindText)
	}
	if err != nil {
		return failed(KindText, "", err)
	}

	if err := writeFile(path, text); err != nil {
		slog.Error("text save failed", "path", path, "err", err)
		return failed(KindText, path, err)
	}
	slog.Info("text saved", "path", path, "size_bytes", len(text))
	return saved(KindText, path, "")
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing to file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	return nil
}
