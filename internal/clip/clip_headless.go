package clip

import "image"

// headlessReader is a clipboard that is always empty, used where there is no
// display server (headless Linux servers, containers, CI).
type headlessReader struct{}

func (headlessReader) Name() string                { return "headless (empty)" }
func (headlessReader) Image() (image.Image, error) { return nil, nil }
func (headlessReader) Text() ([]byte, error)       { return nil, nil }
