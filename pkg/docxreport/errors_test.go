package docxreport

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestGenerateErrorIs(t *testing.T) {
	tests := []struct {
		kind     Kind
		sentinel error
	}{
		{KindInputMissing, ErrInputMissing},
		{KindInputRead, ErrInputRead},
		{KindInputMalformed, ErrInputMalformed},
		{KindOutputWrite, ErrOutputWrite},
	}

	for _, tt := range tests {
		err := NewGenerateError(tt.kind, "x", fs.ErrPermission)
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("%s: expected errors.Is(%v)", tt.kind, tt.sentinel)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("%s: expected cause to be reachable through Unwrap", tt.kind)
		}
		for _, other := range tests {
			if other.kind != tt.kind && errors.Is(err, other.sentinel) {
				t.Errorf("%s: unexpectedly matches %v", tt.kind, other.sentinel)
			}
		}
	}
}

func TestGenerateErrorMessage(t *testing.T) {
	tests := []struct {
		err      *GenerateError
		contains string
	}{
		{NewGenerateError(KindInputMissing, "data.json", fs.ErrNotExist), "JSON file not found at data.json"},
		{NewGenerateError(KindInputMalformed, "data.json", errors.New("bad")), "could not decode JSON from data.json: bad"},
		{NewGenerateError(KindOutputWrite, "out.docx", fs.ErrPermission), "error saving out.docx"},
		{NewGenerateError(KindInputRead, "dir", errors.New("is a directory")), "input_read: dir"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.contains) {
			t.Errorf("Error() = %q, expected to contain %q", got, tt.contains)
		}
	}
}

func TestKindOf(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("Expected no kind for a plain error")
	}
	wrapped := errors.Join(errors.New("context"), NewGenerateError(KindOutputWrite, "o", nil))
	if kind, ok := KindOf(wrapped); !ok || kind != KindOutputWrite {
		t.Errorf("KindOf(wrapped) = %q, %v", kind, ok)
	}
}
