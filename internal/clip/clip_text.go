package clip

import (
	"errors"
	"fmt"
	"image"

	"github.com/atotto/clipboard"
)

// textReader shells out to the platform clipboard utilities. It never
// reports an image.
type textReader struct {
	readAll func() (string, error)
}

func newTextReader() (Reader, error) {
	if clipboard.Unsupported {
		return nil, errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return textReader{readAll: clipboard.ReadAll}, nil
}

func (textReader) Name() string { return "text clipboard (command)" }

func (textReader) Image() (image.Image, error) { return nil, nil }

func (r textReader) Text() ([]byte, error) {
	s, err := r.readAll()
	if err != nil {
		return nil, fmt.Errorf("read clipboard text: %w", err)
	}
	if s == "" {
		return nil, nil
	}
	return []byte(s), nil
}
