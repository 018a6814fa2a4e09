package ztdesktop

import "encoding/json"

// icons contains SVG icons loaded from embedded JSON.
// Keys: copy, check, info, warning, error
var icons map[string]string

func init() {
	if err := json.Unmarshal(iconsJSON, &icons); err != nil {
		panic("ztdesktop: failed to parse embedded icons: " + err.Error())
	}
}

// GetIcon returns an icon SVG by name, or "" if there is none.
func GetIcon(name string) string {
	return icons[name]
}
