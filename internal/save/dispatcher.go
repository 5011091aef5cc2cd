package save

import (
	"context"
	"image"
	"log/slog"

	"go.klb.dev/clipsave/internal/clip"
	"go.klb.dev/clipsave/internal/codec"
	"go.klb.dev/clipsave/internal/destination"
)

// Dispatcher decides what the clipboard holds and hands it to the matching
// persister.
type Dispatcher struct {
	reader clip.Reader
	text   *TextPersister
	image  *ImagePersister
}

// NewDispatcher wires the persisters around one selector and encoder.
func NewDispatcher(r clip.Reader, sel destination.Selector, enc codec.Encoder) *Dispatcher {
	return &Dispatcher{
		reader: r,
		text:   &TextPersister{Selector: sel},
		image:  &ImagePersister{Selector: sel, Encoder: enc},
	}
}

// Run reads the clipboard once and saves its content. Images win over text
// when both are offered. An empty clipboard returns StatusUnsupported
// without prompting or writing anything.
func (d *Dispatcher) Run() Outcome {
	if img := d.readImage(); img != nil {
		slog.Info("Image data detected. Opening save dialog...")
		logImage(img)
		return d.image.Save(img)
	}
	if text := d.readText(); len(text) > 0 {
		slog.Info("Text data detected. Opening save dialog...")
		logText(text)
		return d.text.Save(text)
	}
	slog.Info("nothing to save", "backend", d.reader.Name())
	return unsupported()
}

func (d *Dispatcher) readImage() image.Image {
	img, err := d.reader.Image()
	if err != nil {
		slog.Warn("clipboard image unreadable, ignoring", "backend", d.reader.Name(), "err", err)
		return nil
	}
	return img
}

func (d *Dispatcher) readText() []byte {
	text, err := d.reader.Text()
	if err != nil {
		slog.Warn("clipboard text unreadable, ignoring", "backend", d.reader.Name(), "err", err)
		return nil
	}
	return text
}

// logText logs a preview of up to 120 bytes at DEBUG.
func logText(text []byte) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	preview := string(text)
	if len(preview) > 120 {
		preview = preview[:120] + "…"
	}
	slog.Debug("clipboard item", "kind", KindText, "size_bytes", len(text), "preview", preview)
}

func logImage(img image.Image) {
	b := img.Bounds()
	slog.Debug("clipboard item", "kind", KindImage, "width", b.Dx(), "height", b.Dy())
}
