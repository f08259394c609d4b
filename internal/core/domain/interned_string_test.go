package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/stylekit/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("lint")
	is2 := domain.NewInternedString("lint")

	if is1 != is2 {
		t.Errorf("Expected interned values to be equal, got %v and %v", is1, is2)
	}
	if is1.String() != "lint" {
		t.Errorf("Expected String() to return %q, got %q", "lint", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected empty string for zero value, got %q", zero.String())
	}
}

func TestInternedStringJSON(t *testing.T) {
	original := domain.NewInternedString("run-tests")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal InternedString: %v", err)
	}
	if string(data) != `"run-tests"` {
		t.Errorf("Expected JSON %q, got %q", `"run-tests"`, string(data))
	}

	var decoded domain.InternedString
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal InternedString: %v", err)
	}
	if decoded != original {
		t.Errorf("Expected %v after round trip, got %v", original, decoded)
	}
}
