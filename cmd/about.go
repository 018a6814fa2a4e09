package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crafted-tech/ztdesktop"
	"github.com/crafted-tech/ztdesktop/about"
	"github.com/crafted-tech/ztdesktop/internal/errors"
	"github.com/crafted-tech/ztdesktop/internal/logging"
	"github.com/crafted-tech/ztdesktop/platform"

	"github.com/spf13/cobra"
)

var aboutTheme string

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show the About window",
	Long: `Show the About window and wait until it is dismissed. Only one About
window is shown at a time; a second invocation exits with status 0.`,
	Example: `  # Show the About window
  ztdesktop about

  # Force the dark theme
  ztdesktop about --theme dark`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themeName := cfg.About.Theme
		if cmd.Flags().Changed("theme") {
			themeName = aboutTheme
		}
		theme, ok := ztdesktop.ParseTheme(themeName)
		if !ok {
			return errors.ValidationError(fmt.Sprintf("unknown theme %q (use system, dark or light)", themeName))
		}

		if about.IsOpen() {
			logging.Info().Msg("about window is already open")
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := about.Run(ctx, about.Config{
			Info:      about.DefaultInfo(),
			Title:     cfg.About.Title,
			Width:     cfg.About.Width,
			Height:    cfg.About.Height,
			Theme:     theme,
			Clipboard: platform.NewClipboard(platform.WithLinuxTool(cfg.Clipboard.LinuxTool)),
		})
		if !about.Dismissed(err) {
			return errors.NewWithError(errors.ExitCodeWindow, "failed to show about window", err)
		}
		if stderrors.Is(err, about.ErrAlreadyOpen) {
			logging.Info().Msg("about window is already open")
		} else if err != nil {
			logging.Debug().Err(err).Msg("about window interrupted")
		}
		return nil
	},
}

func init() {
	aboutCmd.Flags().StringVar(&aboutTheme, "theme", "system", "Color theme (system, dark, light)")
}
