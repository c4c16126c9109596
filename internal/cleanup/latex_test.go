package cleanup

import "testing"

func TestLatexEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Gelfond", "Gelfond"},
		{"Hölldobler", `H{\"o}lldobler`},
		{"École", `{\'E}cole`},
		{"Kraków", `Krak{\'o}w`},
		{"straße", `stra{\ss}e`},
		{"Çınar", `{\c{C}}{\i}nar`},
		{"Ngõ", "Ngõ"},
		{"pages 1–10", "pages 1--10"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LatexEscape(tt.in); got != tt.want {
			t.Errorf("LatexEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
