package dates

import "testing"

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2023.12.03", false},
		{"2023.01.04", false},
		{" 2023.01.04 ", false},
		{"2023-12-03", true},
		{"2023.13.01", true},
		{"yesterday", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2023.12.03", "Sun, Dec 3 '23"},
		{"2023.01.04", "Wed, Jan 4 '23"},
		{"2024.02.29", "Thu, Feb 29 '24"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDay(tt.in)
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tt.in, err)
			}
			if got := FormatShort(d); got != tt.want {
				t.Fatalf("FormatShort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
