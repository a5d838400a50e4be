package types_test

import (
	"encoding/json"
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
)

// TestFlexListArray tests normal array decoding
func TestFlexListArray(t *testing.T) {
	var f types.FlexList[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &f); err != nil {
		t.Fatalf("Failed to unmarshal array: %v", err)
	}
	if len(f) != 2 || f[0] != "a" || f[1] != "b" {
		t.Errorf("Expected [a b], got %v", f.Slice())
	}
}

// TestFlexListSingle tests that a bare value wraps into a one-item list
func TestFlexListSingle(t *testing.T) {
	var f types.FlexList[string]
	if err := json.Unmarshal([]byte(`"a"`), &f); err != nil {
		t.Fatalf("Failed to unmarshal single value: %v", err)
	}
	if len(f) != 1 || f[0] != "a" {
		t.Errorf("Expected [a], got %v", f.Slice())
	}
}

// TestFlexListNull tests that null leaves the list empty
func TestFlexListNull(t *testing.T) {
	var f types.FlexList[string]
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("Failed to unmarshal null: %v", err)
	}
	if len(f) != 0 {
		t.Errorf("Expected empty list, got %v", f.Slice())
	}
}
