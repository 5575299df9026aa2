package column

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

func strPtr(v string) *string { return &v }

func validColumn() Column {
	return Column{
		ID:      "c1",
		OwnerID: "u1",
		Title:   "Backlog",
		Color:   DefaultColor,
	}
}

func TestColumn_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Column)
		wantField string
	}{
		{
			name:   "valid column",
			modify: func(*Column) {},
		},
		{
			name:   "short color is valid",
			modify: func(c *Column) { c.Color = "#abc" },
		},
		{
			name:   "title at max length is valid",
			modify: func(c *Column) { c.Title = strings.Repeat("x", MaxTitleLength) },
		},
		{
			name:      "blank title",
			modify:    func(c *Column) { c.Title = "   " },
			wantField: "title",
		},
		{
			name:      "title too long",
			modify:    func(c *Column) { c.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantField: "title",
		},
		{
			name:      "color without hash",
			modify:    func(c *Column) { c.Color = "3B82F6" },
			wantField: "color",
		},
		{
			name:      "color with bad digits",
			modify:    func(c *Column) { c.Color = "#GGGGGG" },
			wantField: "color",
		},
		{
			name:      "negative position",
			modify:    func(c *Column) { c.Position = -1 },
			wantField: "position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validColumn()
			tt.modify(&c)
			err := c.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("errors.Is(err, ErrValidation) = false")
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	c := validColumn()
	c.Position = 3
	position := 1
	Patch{Title: strPtr("Done"), Position: &position}.Apply(&c)

	if c.Title != "Done" {
		t.Errorf("Title = %q, want %q", c.Title, "Done")
	}
	if c.Color != DefaultColor {
		t.Errorf("Color = %q, want unchanged %q", c.Color, DefaultColor)
	}
	if c.Position != 3 {
		t.Errorf("Position = %d, want unchanged 3", c.Position)
	}
}

func TestParseDeletePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    DeletePolicy
		wantErr bool
	}{
		{in: "", want: DeleteCascade},
		{in: "cascade", want: DeleteCascade},
		{in: "unfile", want: DeleteUnfile},
		{in: "orphan", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDeletePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDeletePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeletePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
