package match

import "testing"

func TestSuggest(t *testing.T) {
	attrs := []string{"item_key_closure", "prefix", "separator", "serde_compat", "version"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{"close typo", "prefex", attrs, "prefix"},
		{"dropped letter", "seprator", attrs, "separator"},
		{"exact match", "version", attrs, "version"},
		{"too far", "compression", attrs, ""},
		{"no candidates", "prefix", nil, ""},
		{"tie resolves to first", "ax", []string{"aa", "ab"}, "aa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.input, tt.candidates)
			if got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
