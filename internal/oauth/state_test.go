package oauth

import "testing"

func TestGenerateState(t *testing.T) {
	t.Parallel()

	a, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState: %v", err)
	}
	b, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState: %v", err)
	}

	if a == b {
		t.Error("two generated states should differ")
	}
	if len(a) < 32 {
		t.Errorf("state too short: %d chars", len(a))
	}
}

func TestValidateState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		received string
		want     bool
	}{
		{name: "exact match", expected: "abc", received: "abc", want: true},
		{name: "mismatch", expected: "abc", received: "abd", want: false},
		{name: "missing received", expected: "abc", received: "", want: false},
		{name: "empty expected never validates", expected: "", received: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateState(tt.expected, tt.received); got != tt.want {
				t.Errorf("ValidateState(%q, %q) = %v, want %v", tt.expected, tt.received, got, tt.want)
			}
		})
	}
}
