package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/crafted-tech/ztdesktop/internal/config"
	"github.com/crafted-tech/ztdesktop/internal/errors"
	"github.com/crafted-tech/ztdesktop/internal/logging"
	"github.com/crafted-tech/ztdesktop/platform"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var (
	configPath string
	logLevel   string

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "ztdesktop",
	Short: "ZeroTier desktop UI helper",
	Long: `Native helper surfaces for the ZeroTier desktop tray: the About window
and a system clipboard bridge. The tray runs these as child processes.

The config file is read from <user config dir>/ztdesktop/config.yaml
unless --config is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		// Explicit flag takes precedence over env var and config file
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}

		closer, err := logging.Setup(level, cfg.LogFile)
		if err != nil {
			return errors.ConfigError("failed to open log file", err)
		}
		logCloser = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ztdesktop version %s\n", ver)
		fmt.Fprintf(out, "Built: %s\n", bt)
		fmt.Fprintf(out, "Git commit: %s\n", gc)
		fmt.Fprintf(out, "OS: %s\n", platform.OSVersion())
	},
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		closeLog()
		os.Exit(int(exitCode))
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(clipboardCmd)

	clipboardCmd.AddCommand(
		clipboardCopyCmd,
		clipboardPutCmd,
		clipboardPasteCmd,
		clipboardFormatsCmd,
	)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <user config dir>/ztdesktop/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")
}
