package textutil

import "testing"

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "MyProject", "myproject"},
		{"keeps digits and separators", "take-2_final", "take-2_final"},
		{"replaces spaces", "weekly update", "weekly_update"},
		{"replaces punctuation", "clip: part one!", "clip__part_one"},
		{"trims separator runs", "--draft--", "draft"},
		{"empty becomes unknown", "   ", "unknown"},
		{"all punctuation becomes unknown", "!!!", "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeToken(tc.input); got != tc.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
