package utils

import "testing"

func TestGenerateSecurePassword(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{"requested length", 12, 12},
		{"longer password", 24, 24},
		{"below minimum is raised", 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSecurePassword(tt.length)
			if len(got) != tt.wantLength {
				t.Errorf("Expected length %d, got %d (%q)", tt.wantLength, len(got), got)
			}
		})
	}
}

func TestGenerateSecurePasswordIsRandom(t *testing.T) {
	a := GenerateSecurePassword(16)
	b := GenerateSecurePassword(16)
	if a == b {
		t.Errorf("Expected two generated passwords to differ, both were %q", a)
	}
}
