package fetch

import "testing"

func TestParseProbeOutput(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		expected  int
		expectErr bool
	}{
		{"whole seconds", "215.000000\n", 215, false},
		{"fractional seconds truncated", "187.730612\n", 187, false},
		{"no trailing newline", "42.5", 42, false},
		{"empty output", "", 0, true},
		{"garbage output", "N/A\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseProbeOutput(tt.output)

			if tt.expectErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}
