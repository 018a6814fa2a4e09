/*
Package ztdesktop provides the small native surfaces of the ZeroTier desktop
UI: HTML pages rendered in a webframe window, one page at a time.

# Basic Usage

Create a Window and display pages using the Show* methods:

	w, err := ztdesktop.New(
		ztdesktop.WithTitle("About ZeroTier UI"),
		ztdesktop.WithPixelSize(500, 300),
		ztdesktop.WithResizable(false),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	copyBtn := ztdesktop.NewButton("Copy", "copy")
	w.ShowText("ZeroTier Desktop UI", ztdesktop.TextBlock{Text: text},
		ztdesktop.WithAction(copyBtn, func() error {
			return platform.CopyToClipboard(text)
		}),
	)

# Buttons and Actions

A page ends when the user clicks a footer button, presses Escape or closes
the window. The returned Response carries the ID of the button; closing the
window gives Close.

Action buttons added with WithAction do not end the page. Their handler runs
on the UI thread and the button shows a check mark or an error mark once it
returns.

# JS->Go Communication

Pages talk to Go through window.external.invoke() with a JSON message of the
form {"type": ..., "button": ..., "data": ...}.
*/
package ztdesktop
