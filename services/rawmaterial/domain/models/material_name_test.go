package models

import (
	"strings"
	"testing"
)

func TestNewMaterialName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid short name", "Wood", false},
		{"single character", "W", false},
		{"255 characters", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"256 characters", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMaterialName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.input {
				t.Fatalf("expected %q, got %q", tt.input, got.String())
			}
		})
	}
}
