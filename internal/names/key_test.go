package names

import "testing"

func TestSurnameKey(t *testing.T) {
	tests := []struct {
		name     string
		surnames []string
		want     string
	}{
		{
			name:     "empty list",
			surnames: nil,
			want:     "",
		},
		{
			name:     "single surname",
			surnames: []string{"Smith"},
			want:     "smith",
		},
		{
			name:     "single surname keeps full length",
			surnames: []string{"Lifschitz"},
			want:     "lifschitz",
		},
		{
			name:     "accents stripped",
			surnames: []string{"H{\\\"o}lldobler"},
			want:     "holldobler",
		},
		{
			name:     "two surnames take three letters",
			surnames: []string{"Gelfond", "Lifschitz"},
			want:     "gellif",
		},
		{
			name:     "three surnames take two letters",
			surnames: []string{"Gelfond", "Kahl", "Zantema"},
			want:     "gekaza",
		},
		{
			name:     "short surnames padded",
			surnames: []string{"A", "B", "C"},
			want:     "a_b_c_",
		},
		{
			name:     "blank surname dropped before splitting",
			surnames: []string{"", "Smith"},
			want:     "smith",
		},
		{
			name:     "surname reduced to nothing dropped after stripping",
			surnames: []string{"Smith", "!!!"},
			want:     "sm",
		},
		{
			name:     "single surname may strip to empty",
			surnames: []string{"!!!"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurnameKey(tt.surnames); got != tt.want {
				t.Errorf("SurnameKey(%v) = %q, want %q", tt.surnames, got, tt.want)
			}
		})
	}
}
