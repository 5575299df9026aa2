package note

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// requireValidationField asserts err wraps domain.ErrValidation and names field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validNote() Note {
	return Note{
		ID:      "n1",
		OwnerID: "u1",
		Title:   "Buy milk",
		Content: "two litres",
		Color:   DefaultColor,
	}
}

func TestNote_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Note)
		wantField string
	}{
		{name: "valid note", modify: func(*Note) {}},
		{name: "filed note", modify: func(n *Note) { n.ColumnID = strPtr("c1") }},
		{name: "blank title", modify: func(n *Note) { n.Title = "" }, wantField: "title"},
		{
			name:      "title too long",
			modify:    func(n *Note) { n.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantField: "title",
		},
		{name: "blank content", modify: func(n *Note) { n.Content = " \t" }, wantField: "content"},
		{name: "bad color", modify: func(n *Note) { n.Color = "white" }, wantField: "color"},
		{name: "negative position", modify: func(n *Note) { n.Position = -2 }, wantField: "position"},
		{name: "blank column id", modify: func(n *Note) { n.ColumnID = strPtr(" ") }, wantField: "column_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := validNote()
			tt.modify(&n)
			err := n.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestSameColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *string
		want bool
	}{
		{name: "both unfiled", want: true},
		{name: "unfiled vs filed", b: strPtr("c1"), want: false},
		{name: "filed vs unfiled", a: strPtr("c1"), want: false},
		{name: "same column", a: strPtr("c1"), b: strPtr("c1"), want: true},
		{name: "different columns", a: strPtr("c1"), b: strPtr("c2"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SameColumn(tt.a, tt.b); got != tt.want {
				t.Errorf("SameColumn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMove_Validate(t *testing.T) {
	t.Parallel()

	if err := (Move{Position: intPtr(0)}).Validate(); err != nil {
		t.Errorf("Validate(position 0) = %v, want nil", err)
	}
	if err := (Move{ChangeColumn: true}).Validate(); err != nil {
		t.Errorf("Validate(to unfiled) = %v, want nil", err)
	}
	requireValidationField(t, Move{Position: intPtr(-1)}.Validate(), "position")
	requireValidationField(t, Move{ChangeColumn: true, ColumnID: strPtr("")}.Validate(), "column_id")
}

func TestMove_IsZero(t *testing.T) {
	t.Parallel()

	if !(Move{}).IsZero() {
		t.Error("Move{}.IsZero() = false, want true")
	}
	if (Move{ChangeColumn: true}).IsZero() {
		t.Error("re-scope move reported as zero")
	}
}

func TestReorder_Validate(t *testing.T) {
	t.Parallel()

	if err := (Reorder{IDs: []string{"a", "b"}}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, Reorder{}.Validate(), "note_ids")
	requireValidationField(t, Reorder{IDs: []string{"a", "a"}}.Validate(), "note_ids")
	requireValidationField(t, Reorder{IDs: []string{""}}.Validate(), "note_ids")
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	n := validNote()
	Patch{Content: strPtr("oat milk"), Archived: new(bool)}.Apply(&n)

	if n.Content != "oat milk" {
		t.Errorf("Content = %q, want %q", n.Content, "oat milk")
	}
	if n.Title != "Buy milk" {
		t.Errorf("Title = %q, want unchanged", n.Title)
	}
	if n.IsArchived {
		t.Error("Apply must not toggle the archive flag")
	}
}

func TestFilter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    Filter
		wantField string
	}{
		{name: "empty filter", filter: Filter{}},
		{name: "known ordering", filter: Filter{Ordering: []string{"-updated_at", "position"}}},
		{name: "unknown ordering", filter: Filter{Ordering: []string{"title"}}, wantField: "ordering"},
		{
			name:      "column and unfiled",
			filter:    Filter{ColumnID: strPtr("c1"), Unfiled: true},
			wantField: "column_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.filter.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestFilter_SortKeys(t *testing.T) {
	t.Parallel()

	if got := (Filter{}).SortKeys(); len(got) != 2 || got[0] != OrderPosition || got[1] != "-created_at" {
		t.Errorf("SortKeys() default = %v", got)
	}
	if got := (Filter{Ordering: []string{"created_at"}}).SortKeys(); len(got) != 1 || got[0] != "created_at" {
		t.Errorf("SortKeys() = %v", got)
	}
}
