package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipsave/internal/clip"
	"go.klb.dev/clipsave/internal/codec"
	"go.klb.dev/clipsave/internal/destination"
	"go.klb.dev/clipsave/internal/save"
)

func runSave(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)

	mode, err := clip.ParseMode(v.GetString("clipboard"))
	if err != nil {
		return err
	}
	sel, err := destination.New(destination.Kind(v.GetString("picker")), v.GetString("output"))
	if err != nil {
		return err
	}
	reader, err := clip.New(mode)
	if err != nil {
		return err
	}

	slog.Debug("clipsave starting",
		"version", Version,
		"backend", reader.Name(),
		"picker", fmt.Sprintf("%T", sel),
	)

	d := save.NewDispatcher(reader, sel, codec.NewFileEncoder(v.GetInt("jpeg-quality")))
	return report(cmd.OutOrStdout(), d.Run())
}

// report prints the outcome's status line. Only a failed save is an error;
// cancellation and an empty clipboard exit cleanly.
func report(w io.Writer, o save.Outcome) error {
	if o.Status == save.StatusFailed {
		return fmt.Errorf("saving %s: %w", o.Kind, o.Err)
	}
	fmt.Fprintln(w, o.Message())
	return nil
}
