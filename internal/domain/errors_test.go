package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"title": MsgRequired,
		"color": MsgInvalidColor,
	}}

	want := "validation error: color: " + MsgInvalidColor + "; title: " + MsgRequired
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("note_ids", MsgMustNotEmpty)
	if got := err.Fields["note_ids"]; got != MsgMustNotEmpty {
		t.Errorf("Fields[note_ids] = %q, want %q", got, MsgMustNotEmpty)
	}
}

func TestIsHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"#FFFFFF", true},
		{"#3b82f6", true},
		{"#abc", true},
		{"#abcd", false},
		{"FFFFFF", false},
		{"#GGG", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHexColor(tt.in); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUserID_IsZero(t *testing.T) {
	t.Parallel()

	if !UserID("  ").IsZero() {
		t.Error(`UserID("  ").IsZero() = false, want true`)
	}
	if UserID("u1").IsZero() {
		t.Error(`UserID("u1").IsZero() = true, want false`)
	}
}

func TestValidateIDList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ids     []string
		wantErr bool
	}{
		{name: "single id", ids: []string{"a"}},
		{name: "several ids", ids: []string{"a", "b", "c"}},
		{name: "empty list", ids: nil, wantErr: true},
		{name: "blank id", ids: []string{"a", " "}, wantErr: true},
		{name: "duplicate id", ids: []string{"a", "b", "a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateIDList("column_ids", tt.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateIDList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %T, want *ValidationError", err)
			}
			if _, ok := verr.Fields["column_ids"]; !ok {
				t.Errorf("Fields = %v, missing column_ids", verr.Fields)
			}
		})
	}
}
