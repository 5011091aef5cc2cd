package save

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"go.klb.dev/clipsave/internal/codec"
	"go.klb.dev/clipsave/internal/destination"
)

// ImageFileName is the name suggested for image saves.
const ImageFileName = "clipboard_image.png"

var imageRequest = destination.Request{
	Title:       "Save Image File",
	DefaultName: ImageFileName,
	Filters: []destination.Filter{
		{Label: "PNG Image (*.png)", Patterns: []string{"*.png"}, MIMEType: "image/png"},
		{Label: "JPEG Image (*.jpg, *.jpeg)", Patterns: []string{"*.jpg", "*.jpeg"}, MIMEType: "image/jpeg"},
	},
}

// ImagePersister encodes clipboard images. The format comes from the chosen
// file's extension, never from the dialog's filter.
type ImagePersister struct {
	Selector destination.Selector
	Encoder  codec.Encoder
}

// Save asks for a destination and encodes img to it.
func (p *ImagePersister) Save(img image.Image) Outcome {
	path, err := p.Selector.Choose(imageRequest)
	if errors.Is(err, destination.ErrCanceled) {
		slog.Info("image save canceled")
		return canceled(KindImage)
	}
	if err != nil {
		return failed(KindImage, "", err)
	}

	format := codec.FromPath(path)
	if err := encode(p.Encoder, img, path, format); err != nil {
		slog.Error("image save failed", "path", path, "format", format, "err", err)
		o := failed(KindImage, path, err)
		o.Format = format
		return o
	}
	slog.Info("image saved", "path", path, "format", format)
	return saved(KindImage, path, format)
}

// encode calls the encoder and turns any error or panic into ErrCodec.
func encode(enc codec.Encoder, img image.Image, path string, f codec.Format) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCodec, r)
		}
	}()

	if err := enc.Encode(img, path, f); err != nil {
		if err.Error() == "" {
			return fmt.Errorf("%w: encoder reported failure", ErrCodec)
		}
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	return nil
}
