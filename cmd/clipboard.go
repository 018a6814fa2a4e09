package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crafted-tech/ztdesktop/internal/errors"
	"github.com/crafted-tech/ztdesktop/internal/logging"
	"github.com/crafted-tech/ztdesktop/platform"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clipboardItems []string

var clipboardCmd = &cobra.Command{
	Use:     "clipboard",
	Aliases: []string{"clip"},
	Short:   "Read and write the system clipboard",
}

var clipboardCopyCmd = &cobra.Command{
	Use:   "copy [TEXT...]",
	Short: "Copy text to the clipboard",
	Long:  `Copy the arguments, joined by spaces, to the clipboard. With no arguments the text is read from stdin.`,
	Example: `  ztdesktop clipboard copy "10.147.17.5"
  zerotier-cli info | ztdesktop clipboard copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.NewWithError(errors.ExitCodeGeneral, "failed to read stdin", err)
			}
			text = string(data)
		}

		if err := newClipboard().WriteText(text); err != nil {
			return clipboardError("failed to copy text", err)
		}
		logging.Debug().Int("bytes", len(text)).Msg("copied text to clipboard")
		return nil
	},
}

var clipboardPutCmd = &cobra.Command{
	Use:   "put --item ID=PATH...",
	Short: "Put one or more formats on the clipboard",
	Long: `Replace the clipboard with the given formats. Each --item names a format
identifier and a file holding its payload. Use "text" for Unicode text.`,
	Example: `  ztdesktop clipboard put --item text=address.txt --item image/svg+xml=qr.svg`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(clipboardItems) == 0 {
			return errors.NewWithSuggestion(errors.ExitCodeValidation, "no formats given",
				"Pass at least one --item ID=PATH.")
		}

		formats := make([]platform.Format, 0, len(clipboardItems))
		for _, item := range clipboardItems {
			id, path, err := parseItem(item)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.NewWithError(errors.ExitCodeGeneral, "failed to read "+path, err)
			}
			formats = append(formats, platform.Format{Identifier: id, Data: data})
		}

		if err := newClipboard().PutFormats(formats); err != nil {
			return clipboardError("some formats were not stored", err)
		}
		return nil
	},
}

var clipboardPasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Print the clipboard text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := newClipboard().ReadText()
		if err != nil {
			if stderrors.Is(err, platform.ErrNoText) {
				return errors.NewWithError(errors.ExitCodeNoText, "clipboard holds no text", err)
			}
			return clipboardError("failed to read clipboard", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var clipboardFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the standard clipboard format names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFormats(cmd.OutOrStdout())
	},
}

func newClipboard() platform.Clipboard {
	return platform.NewClipboard(platform.WithLinuxTool(cfg.Clipboard.LinuxTool))
}

func clipboardError(message string, err error) error {
	if stderrors.Is(err, platform.ErrClipboardUnavailable) {
		return &errors.Error{
			Code:       errors.ExitCodeClipboard,
			Message:    message,
			Underlying: err,
			Suggestion: "On Linux install wl-clipboard, xclip or xsel.\nSet clipboard.linux_tool in the config file to pick one.",
		}
	}
	return errors.NewWithError(errors.ExitCodeClipboard, message, err)
}

// parseItem splits an ID=PATH argument. "text" is shorthand for the Unicode
// text format.
func parseItem(item string) (id, path string, err error) {
	id, path, ok := strings.Cut(item, "=")
	if !ok || id == "" || path == "" {
		return "", "", errors.ValidationError(fmt.Sprintf("invalid --item %q, expected ID=PATH", item))
	}
	if id == "text" {
		id = platform.FormatText
	}
	return id, path, nil
}

func printFormats(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	cyan.Fprintf(w, "%-20s %s\n", "NAME", "ID")
	for _, f := range platform.StandardFormats() {
		fmt.Fprintf(w, "%-20s %s\n", f.Name, faint.Sprintf("0x%04X", f.ID))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s maps to CF_UNICODETEXT. Other names are registered with the OS on Windows\n", platform.FormatText)
	fmt.Fprintln(w, "and used as MIME types on Linux.")
}

func init() {
	clipboardPutCmd.Flags().StringArrayVar(&clipboardItems, "item", nil, "Format to store as ID=PATH (repeatable)")
}
