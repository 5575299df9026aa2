package domain

import "strings"

// UserID identifies the owner of columns and notes. It is supplied by the
// identity provider for every request and passed explicitly to each
// application service method; the domain never reads an ambient user.
type UserID string

// IsZero reports whether the identifier is empty or blank.
func (u UserID) IsZero() bool {
	return strings.TrimSpace(string(u)) == ""
}

// String implements fmt.Stringer.
func (u UserID) String() string {
	return string(u)
}
