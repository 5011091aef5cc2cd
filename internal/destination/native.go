package destination

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// Native shows the platform save dialog (GTK/KDE via zenity or kdialog on
// Unix, Cocoa on macOS, the common dialog on Windows).
type Native struct{}

func (Native) Choose(req Request) (string, error) {
	filters := make(zenity.FileFilters, 0, len(req.Filters))
	for _, f := range req.Filters {
		filters = append(filters, zenity.FileFilter{
			Name:     f.Label,
			Patterns: f.Patterns,
			CaseFold: true,
		})
	}

	path, err := zenity.SelectFileSave(
		zenity.Title(req.Title),
		zenity.Filename(req.DefaultName),
		zenity.ConfirmOverwrite(),
		filters,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	return path, nil
}
