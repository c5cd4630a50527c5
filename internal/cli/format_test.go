package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.25, "$4.25"},
		{99.999, "$100.00"},
		{250, "$250"},
		{1_250, "$1,250"},
		{999_499, "$999,499"},
		{1_250_000, "$1.25M"},
		{2_400_000_000, "$2.40B"},
		{-60_000, "-$60,000"},
		{0, "$0.00"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(500); got != "+$500" {
		t.Fatalf("FormatSignedMoney(500) = %q", got)
	}
	if got := FormatSignedMoney(-500); got != "-$500" {
		t.Fatalf("FormatSignedMoney(-500) = %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(7, 24); got != "7 months" {
		t.Fatalf("FormatMonths(7, 24) = %q", got)
	}
	if got := FormatMonths(1, 24); got != "1 month" {
		t.Fatalf("FormatMonths(1, 24) = %q", got)
	}
	if got := FormatMonths(24, 24); got != "24+ months" {
		t.Fatalf("FormatMonths(24, 24) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-4_500, "-4,500"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatGrowthRate(t *testing.T) {
	if got := FormatGrowthRate(0.18); got != "+18%/yr" {
		t.Fatalf("FormatGrowthRate(0.18) = %q", got)
	}
	if got := FormatGrowthRate(-0.05); got != "-5%/yr" {
		t.Fatalf("FormatGrowthRate(-0.05) = %q", got)
	}
}
