package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-millisecond", 250 * time.Microsecond, "250µs"},
		{"sub-second", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"minutes", 90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatCHF(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "CHF 0"},
		{999, "CHF 999"},
		{1000, "CHF 1'000"},
		{1234567.8, "CHF 1'234'568"},
		{173357370, "CHF 173'357'370"},
		{-42000, "CHF -42'000"},
	}

	for _, tt := range tests {
		if got := FormatCHF(tt.amount); got != tt.want {
			t.Errorf("FormatCHF(%g) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatColonies(t *testing.T) {
	tests := []struct {
		colonies float64
		want     string
	}{
		{182300, "182'300"},
		{181027.25, "181'027"},
		{7, "7"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatColonies(tt.colonies); got != tt.want {
			t.Errorf("FormatColonies(%g) = %q, want %q", tt.colonies, got, tt.want)
		}
	}
}

func TestFormatTonsAndKg(t *testing.T) {
	if got := FormatTons(5450.67); got != "5450.7 t" {
		t.Errorf("FormatTons = %q", got)
	}
	if got := FormatKg(29.9); got != "29.9 kg" {
		t.Errorf("FormatKg = %q", got)
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1500, "+1'500"},
		{-1500, "-1'500"},
		{0, "+0"},
	}

	for _, tt := range tests {
		if got := FormatSigned(tt.v); got != tt.want {
			t.Errorf("FormatSigned(%g) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
