package ztdesktop

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// renderPage generates the complete HTML document for a page.
func renderPage(page Page, darkMode bool, primaryLight, primaryDark string) string {
	var buf bytes.Buffer

	theme := "light"
	if darkMode {
		theme = "dark"
	}

	css := cssContent
	if primaryLight != "" || primaryDark != "" {
		var colorCSS strings.Builder
		if primaryLight != "" {
			colorCSS.WriteString("\n:root {")
			colorCSS.WriteString("\n    --primary: " + primaryLight + ";")
			colorCSS.WriteString("\n    --ring: " + primaryLight + ";")
			colorCSS.WriteString("\n}")
		}
		if primaryDark != "" {
			colorCSS.WriteString("\n[data-theme=\"dark\"] {")
			colorCSS.WriteString("\n    --primary: " + primaryDark + ";")
			colorCSS.WriteString("\n    --ring: " + primaryDark + ";")
			colorCSS.WriteString("\n}")
		}
		css += colorCSS.String()
	}

	buf.WriteString(`<!DOCTYPE html>
<html lang="en" data-theme="` + theme + `">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>` + css + `</style>
</head>
<body>
    <div class="flow-container">
`)

	buf.WriteString(`        <div class="flow-header">`)
	if page.Icon != "" {
		buf.WriteString("\n" + renderIcon(page.Icon))
	}
	if page.Title != "" {
		buf.WriteString(`
            <h1 class="flow-title">` + html.EscapeString(page.Title) + `</h1>`)
	}
	if page.Subtitle != "" {
		buf.WriteString(`
            <p class="flow-subtitle">` + html.EscapeString(page.Subtitle) + `</p>`)
	}
	buf.WriteString(`</div>
`)

	buf.WriteString(`        <div class="flow-content">
`)
	buf.WriteString(renderContent(page.Content))
	buf.WriteString(`        </div>
`)

	buf.WriteString(renderButtonBar(page.ButtonBar, page.Actions))

	buf.WriteString(`    </div>
    <script>` + jsContent + `</script>
</body>
</html>`)

	return buf.String()
}

// renderIcon renders a named icon or raw SVG content.
func renderIcon(icon string) string {
	var svg, iconClass string

	switch icon {
	case "info", "warning", "error":
		iconClass = "icon-" + icon
		svg = GetIcon(icon)
	default:
		if !strings.HasPrefix(icon, "<svg") {
			return ""
		}
		svg = icon
	}

	return fmt.Sprintf(`            <div class="flow-icon %s">%s</div>`, iconClass, svg)
}

func renderContent(content any) string {
	switch c := content.(type) {
	case string:
		return renderMessage(c)
	case TextBlock:
		return renderTextBlock(c)
	default:
		return ""
	}
}

func renderMessage(message string) string {
	return `            <p class="flow-message">` + html.EscapeString(message) + `</p>
`
}

// renderTextBlock renders a read-only text area. The text is escaped so it
// is shown verbatim.
func renderTextBlock(tb TextBlock) string {
	class := "flow-textarea"
	if tb.Monospace {
		class += " monospace"
	}
	return `            <textarea class="` + class + `" readonly spellcheck="false">` +
		html.EscapeString(tb.Text) + `</textarea>
`
}

func renderButtonBar(bb ButtonBar, actions []Action) string {
	if bb.empty() && len(actions) == 0 {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString(`        <div class="flow-footer">
`)

	for _, a := range actions {
		buf.WriteString(renderButton(a.Button, "action"))
	}
	for _, btn := range bb.Actions {
		buf.WriteString(renderButton(btn, "action"))
	}

	if bb.Left != nil {
		buf.WriteString(renderButton(bb.Left, "button"))
	}

	buf.WriteString(`            <div class="button-spacer"></div>
`)

	if bb.Next != nil {
		buf.WriteString(renderButton(bb.Next, "button"))
	}
	if bb.Close != nil {
		buf.WriteString(renderButton(bb.Close, "button"))
	}

	buf.WriteString(`        </div>
`)
	return buf.String()
}

// renderButton renders a single button. kind is "button" for buttons that
// end the page and "action" for buttons that keep it open.
func renderButton(btn *Button, kind string) string {
	if btn == nil {
		return ""
	}

	btnClass := "btn"
	switch btn.Style {
	case ButtonPrimary:
		btnClass += " btn-primary"
	case ButtonDanger:
		btnClass += " btn-destructive"
	default:
		btnClass += " btn-default"
	}

	if btn.IconOnly {
		btnClass += " btn-icon"
	}

	disabled := ""
	if !btn.Enabled {
		btnClass += " btn-disabled"
		disabled = " disabled"
	}

	attrs := fmt.Sprintf(`class="%s" data-kind="%s" data-button="%s"`, btnClass, kind, html.EscapeString(btn.ID))

	var content string
	switch {
	case btn.Icon != "" && btn.IconOnly:
		content = fmt.Sprintf(`<span class="btn-icon-wrap">%s</span>`, btn.Icon)
		attrs += fmt.Sprintf(` title="%s"`, html.EscapeString(btn.Label))
	case btn.Icon != "":
		content = fmt.Sprintf(`<span class="btn-icon-wrap">%s</span><span>%s</span>`, btn.Icon, html.EscapeString(btn.Label))
	default:
		content = html.EscapeString(btn.Label)
	}

	return fmt.Sprintf(`            <button type="button" %s%s>%s</button>
`, attrs, disabled, content)
}
