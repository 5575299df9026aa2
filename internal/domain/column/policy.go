package column

import "fmt"

// DeletePolicy decides what happens to a column's notes when the column is
// deleted.
type DeletePolicy string

const (
	// DeleteCascade destroys the column's notes with it.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteUnfile moves the column's notes to the unfiled lane. Active notes
	// are appended in their previous order; archived notes keep their frozen
	// position.
	DeleteUnfile DeletePolicy = "unfile"
)

// ParseDeletePolicy converts a configuration value into a DeletePolicy.
// An empty value selects DeleteCascade.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case "", DeleteCascade:
		return DeleteCascade, nil
	case DeleteUnfile:
		return DeleteUnfile, nil
	default:
		return "", fmt.Errorf("unknown column delete policy %q (want %q or %q)", s, DeleteCascade, DeleteUnfile)
	}
}
