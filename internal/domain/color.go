package domain

import "regexp"

// hexColorPattern accepts #RGB and #RRGGBB.
var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// MsgInvalidColor is the validation message for malformed colors.
const MsgInvalidColor = "must be a hex color (#RGB or #RRGGBB)"

// IsHexColor reports whether s is a #RGB or #RRGGBB color literal.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
