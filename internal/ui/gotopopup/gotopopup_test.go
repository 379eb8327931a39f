package gotopopup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/ui/testutil"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"62", 0.62, false},
		{"62%", 0.62, false},
		{" 25 ", 0.25, false},
		{"0.62", 0.62, false},
		{"0", 0, false},
		{"1", 1, false},
		{"100", 1, false},
		{"", 0, true},
		{"abc", 0, true},
		{"150", 0, true},
		{"-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := parseRatio(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRatio(%q) expected error, got %v", tt.input, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRatio(%q) failed: %v", tt.input, err)
			}
			if v != tt.expected {
				t.Errorf("parseRatio(%q) = %v, want %v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestSubmitEmitsRatio(t *testing.T) {
	h := testutil.NewPopupHarness(New(0.5))
	h.SetSize(60, 20)

	h.SendKey("4")
	h.SendKey("0")
	cmd := h.SendSpecialKey(tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	msg := cmd()
	am, ok := testutil.ExtractActionMsg(msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	submit, ok := am.Action.(Submit)
	if !ok {
		t.Fatalf("expected Submit action, got %T", am.Action)
	}
	if submit.Ratio != 0.4 {
		t.Errorf("Ratio = %v, want 0.4", submit.Ratio)
	}
}

func TestInvalidInputShowsErrorAndStaysOpen(t *testing.T) {
	h := testutil.NewPopupHarness(New(0.5))
	h.SetSize(60, 20)

	h.SendKey("x")
	cmd := h.SendSpecialKey(tea.KeyEnter)
	if cmd != nil {
		t.Fatal("invalid input should not emit an action")
	}

	view := testutil.StripANSI(h.View())
	if msg := testutil.AssertContains(view, "not a number"); msg != "" {
		t.Error(msg)
	}
}

func TestEscCloses(t *testing.T) {
	h := testutil.NewPopupHarness(New(0.5))

	cmd := h.SendSpecialKey(tea.KeyEsc)
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}

	msg := cmd()
	am, ok := testutil.ExtractActionMsg(msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if _, ok := am.Action.(Close); !ok {
		t.Errorf("expected Close action, got %T", am.Action)
	}
}
