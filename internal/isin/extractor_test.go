package isin

import (
	"errors"
	"testing"

	"github.com/pensionunlock/policypilot/internal/models"
)

func TestExtractIdentifiers_Basic(t *testing.T) {
	ids, err := ExtractIdentifiers("Fund X IE00B4L5Y983 and Fund Y LU0552385295")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 identifiers, got %d: %v", len(ids), ids)
	}
	if ids[0] != "IE00B4L5Y983" || ids[1] != "LU0552385295" {
		t.Errorf("wrong identifiers or order: %v", ids)
	}
}

func TestExtractIdentifiers_EmptyInput(t *testing.T) {
	cases := []string{
		"",
		"I have some funds but no codes",
		"short ABC123 and too long IE00B4L5Y9831",
	}
	for _, text := range cases {
		_, err := ExtractIdentifiers(text)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("text %q: expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestExtractIdentifiers_Dedupe(t *testing.T) {
	ids, err := ExtractIdentifiers("IE00B4L5Y983 again IE00B4L5Y983 then LU0552385295")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected duplicates removed, got %v", ids)
	}
}

func TestExtractIdentifiers_CaseNormalized(t *testing.T) {
	ids, err := ExtractIdentifiers("ie00b4l5y983 and IE00B4L5Y983")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != models.ISIN("IE00B4L5Y983") {
		t.Errorf("expected single uppercased identifier, got %v", ids)
	}
}

func TestExtractIdentifiers_Idempotent(t *testing.T) {
	text := "LU0552385295, IE00B4L5Y983; LU0552385295 DE0008469008"
	first, err := ExtractIdentifiers(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ExtractIdentifiers(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestExtractIdentifiers_LongerRunsIgnored(t *testing.T) {
	// 13-character alphanumeric run must not yield a 12-character match
	ids, err := ExtractIdentifiers("IE00B4L5Y983X LU0552385295")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "LU0552385295" {
		t.Errorf("expected only the exact 12-char token, got %v", ids)
	}
}
