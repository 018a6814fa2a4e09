package ztdesktop

// Navigation is the ID of a button that ends a page.
type Navigation string

const (
	OK     Navigation = "ok"
	Close  Navigation = "close"
	Cancel Navigation = "cancel"
)

// Response is what a page returns once the user has dismissed it.
type Response struct {
	Button string         // ID of the button that ended the page
	Data   map[string]any // Extra values sent by the page, if any
}

// IsClose reports whether the page was closed, cancelled or quit rather
// than confirmed.
func (r Response) IsClose() bool {
	return r.Button == string(Close) || r.Button == string(Cancel)
}

// IsButton reports whether the page was ended by the button with the given ID.
func (r Response) IsButton(id string) bool {
	return r.Button == id
}

// ButtonStyle defines the visual style for a button.
type ButtonStyle int

const (
	ButtonNormal  ButtonStyle = iota // Default button appearance
	ButtonPrimary                    // Emphasized appearance, triggered by Enter
	ButtonDanger                     // Warning/destructive style
)

// Button is a clickable button in a page footer.
type Button struct {
	Label    string      // Display text for the button
	ID       string      // Identifier sent back to Go
	Enabled  bool        // Whether the button is clickable
	Style    ButtonStyle // Visual style
	Icon     string      // Optional icon SVG content (displayed before label)
	IconOnly bool        // If true, only show icon (label used as title)
}

// NewButton returns an enabled button.
func NewButton(label, id string) *Button {
	return &Button{Label: label, ID: id, Enabled: true}
}

// ButtonBar lays out the footer: actions on the left, then a spacer, then
// Left, Next and Close.
type ButtonBar struct {
	Actions []*Button
	Left    *Button
	Next    *Button
	Close   *Button
}

func (bb ButtonBar) empty() bool {
	return len(bb.Actions) == 0 && bb.Left == nil && bb.Next == nil && bb.Close == nil
}

// SimpleOK returns a button bar with a single primary "Ok" button.
func SimpleOK() ButtonBar {
	ok := NewButton("Ok", string(OK))
	ok.Style = ButtonPrimary
	return ButtonBar{Next: ok}
}

// SimpleClose returns a button bar with a single "Close" button.
func SimpleClose() ButtonBar {
	return ButtonBar{Close: NewButton("Close", string(Close))}
}

// TextBlock is page content shown in a read-only, scrollable text area.
type TextBlock struct {
	Text      string
	Monospace bool
}

// Action is a footer button that runs Run and keeps the page open.
type Action struct {
	Button *Button
	Run    func() error
}

// Page describes one screen of a Window.
type Page struct {
	Title     string
	Subtitle  string
	Icon      string // "info", "warning", "error" or raw SVG
	Content   any    // string or TextBlock
	ButtonBar ButtonBar
	Actions   []Action
}

// PageConfig collects the page options.
type PageConfig struct {
	ButtonBar *ButtonBar
	Icon      string
	Subtitle  string
	Actions   []Action
}

// PageOption configures a page.
type PageOption func(*PageConfig)

// WithButtonBar sets the footer buttons.
func WithButtonBar(bb ButtonBar) PageOption {
	return func(c *PageConfig) {
		c.ButtonBar = &bb
	}
}

// WithIcon sets the header icon.
func WithIcon(icon string) PageOption {
	return func(c *PageConfig) {
		c.Icon = icon
	}
}

// WithSubtitle sets the line shown under the title.
func WithSubtitle(subtitle string) PageOption {
	return func(c *PageConfig) {
		c.Subtitle = subtitle
	}
}

// WithAction adds an action button. The page stays open while run executes,
// and the button flashes its result afterwards.
func WithAction(btn *Button, run func() error) PageOption {
	return func(c *PageConfig) {
		c.Actions = append(c.Actions, Action{Button: btn, Run: run})
	}
}

// applyPageConfig builds a Page, falling back to def when no button bar is set.
func applyPageConfig(title string, content any, def ButtonBar, opts []PageOption) Page {
	cfg := PageConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	page := Page{
		Title:    title,
		Subtitle: cfg.Subtitle,
		Icon:     cfg.Icon,
		Content:  content,
		Actions:  cfg.Actions,
	}

	if cfg.ButtonBar != nil {
		page.ButtonBar = *cfg.ButtonBar
	} else {
		page.ButtonBar = def
	}

	return page
}
