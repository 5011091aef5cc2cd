package clip

import (
	"fmt"
	"image"

	"golang.design/x/clipboard"
)

type systemReader struct{}

// newSystemReader initialises golang.design/x/clipboard. clipboard.Init is
// called here rather than in init() so that `clipsave version` never touches
// the display.
func newSystemReader() (Reader, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return systemReader{}, nil
}

func (systemReader) Name() string { return "system clipboard" }

func (systemReader) Image() (image.Image, error) {
	return decodePNG(clipboard.Read(clipboard.FmtImage))
}

func (systemReader) Text() ([]byte, error) {
	text := clipboard.Read(clipboard.FmtText)
	if len(text) == 0 {
		return nil, nil
	}
	return text, nil
}
