package main

import (
	"testing"

	"github.com/vovakirdan/rong/internal/core"
)

func TestSimControls(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		expected    core.Controls
		wantErr     bool
	}{
		{"none", "none", "none", core.Controls{}, false},
		{"empty", "", "", core.Controls{}, false},
		{"left up", "up", "none", core.Controls{LeftUp: true}, false},
		{"right down", "none", "down", core.Controls{RightDown: true}, false},
		{"both", "down", "up", core.Controls{LeftDown: true, RightUp: true}, false},
		{"bad left", "sideways", "none", core.Controls{}, true},
		{"bad right", "up", "left", core.Controls{LeftUp: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := simControls(tc.left, tc.right)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("simControls(%q, %q) = %+v, expected %+v", tc.left, tc.right, got, tc.expected)
			}
		})
	}
}

func TestGameArg(t *testing.T) {
	if got := gameArg(nil); got != defaultGameID {
		t.Errorf("gameArg(nil) = %q, expected %q", got, defaultGameID)
	}
	if got := gameArg([]string{"rong-ball"}); got != "rong-ball" {
		t.Errorf("gameArg = %q, expected rong-ball", got)
	}
}
