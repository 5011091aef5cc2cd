package destination

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompt asks for the path on the terminal. Useful over SSH or when no
// dialog helper is installed.
type Prompt struct{}

func (Prompt) Choose(req Request) (string, error) {
	path := req.DefaultName

	err := huh.NewInput().
		Title(req.Title).
		Description(describe(req.Filters)).
		Placeholder(req.DefaultName).
		Value(&path).
		Validate(validatePath).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ErrCanceled
	}
	if err != nil {
		return "", fmt.Errorf("path prompt: %w", err)
	}

	return Fixed{Path: strings.TrimSpace(path)}.Choose(req)
}

func validatePath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a file name is required")
	}
	if strings.HasSuffix(s, string(filepath.Separator)) {
		return errors.New("path names a directory, add a file name")
	}
	return nil
}
