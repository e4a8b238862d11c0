package location

import "testing"

func TestSpanString(t *testing.T) {
	tests := []struct {
		span     Span
		expected string
	}{
		{At("probe.bt", 3, 5, 4), "probe.bt:3:5-9"},
		{NewSpan(Position{"probe.bt", 1, 1}, Position{"probe.bt", 4, 2}), "probe.bt:1:1-4:2"},
		{Span{}, "<unknown>"},
	}

	for _, tt := range tests {
		if got := tt.span.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestSpanLength(t *testing.T) {
	if got := At("a", 1, 3, 6).Length(); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
	if got := NewSpan(Position{Line: 1}, Position{Line: 2}).Length(); got != 1 {
		t.Errorf("multi-line span length should be 1, got %d", got)
	}
}

func TestPosition(t *testing.T) {
	if (Position{}).IsValid() {
		t.Errorf("zero position should be invalid")
	}
	if got := (Position{Line: 2, Column: 4}).String(); got != "2:4" {
		t.Errorf("unexpected position %q", got)
	}
}
