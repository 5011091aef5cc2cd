// clipsave: save the clipboard to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clipsave: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "clipsave",
		Short: "Save the clipboard to a file",
		Long: `clipsave reads the clipboard once and saves what it finds.

An image is saved as PNG, JPEG, BMP or TIFF depending on the extension of the
chosen file name (PNG when there is none). Otherwise clipboard text is saved
byte for byte. When the clipboard holds both, the image wins.

Config file search order (first found wins):
  /etc/clipsave/clipsave.toml
  $HOME/.config/clipsave/clipsave.toml
  path supplied via --config

All flags can be set via CLIPSAVE_<FLAG> env vars or config-file keys.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:          func(cmd *cobra.Command, _ []string) error { return runSave(cmd, v) },
	}

	f := root.Flags()
	f.StringP("output", "o", "", "save here instead of asking (a directory gets the default file name)")
	f.String("picker", "native", "destination picker: native|prompt")
	f.String("clipboard", "auto", "clipboard backend: auto|system|text|none")
	f.Int("jpeg-quality", 90, "JPEG quality, 1-100")
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clipsave %s\n", Version)
		},
	}
}
