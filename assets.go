package ztdesktop

import _ "embed"

// cssContent is the stylesheet shared by every page.
//
//go:embed assets/style.css
var cssContent string

// jsContent is the page runtime that forwards clicks to Go.
//
//go:embed assets/runtime.js
var jsContent string

// iconsJSON holds the SVG icons keyed by name.
//
//go:embed assets/icons.json
var iconsJSON []byte
