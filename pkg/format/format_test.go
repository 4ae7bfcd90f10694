package format

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"10.5":    "10,50",
		"0":       "0,00",
		"1234.56": "1234,56",
		"3.999":   "4,00",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatAmount(%s): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(decimal.RequireFromString("10.5")); got != "R$ 10,50" {
		t.Fatalf("expected R$ 10,50, got %q", got)
	}
	if got := FormatBRL(decimal.Zero); got != "R$ 0,00" {
		t.Fatalf("expected R$ 0,00, got %q", got)
	}

	cases := map[string]string{
		"1234.5":                  "R$ 1.234,50",
		"999.999":                 "R$ 1.000,00",
		"-1234.5":                 "R$ -1.234,50",
		"-0.001":                  "R$ 0,00",
		"12345678901234567.89":    "R$ 12.345.678.901.234.567,89",
		"123456789012345678901.5": "R$ 123.456.789.012.345.678.901,50",
	}
	for in, want := range cases {
		if got := FormatBRL(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatBRL(%s): expected %q, got %q", in, want, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"R$ 10,50":      "10.5",
		"10,50":         "10.5",
		"10.50":         "10.5",
		"R$ 1.234,56":   "1234.56",
		"R$\u00a07,00": "7",
		"  42 ":         "42",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): unexpected error: %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParseAmount(%q): expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"", "R$", "abc", "1,2,3"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestFormatDates(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2023, 12, 25, 17, 30, 0, 0, time.UTC)

	if got := FormatDate(ts, loc); got != "25/12/2023" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := FormatDateTime(ts, loc); got != "25/12/2023 14:30" {
		t.Fatalf("unexpected date time: %q", got)
	}
	if got := FormatTime(ts, loc); got != "14:30" {
		t.Fatalf("unexpected time: %q", got)
	}

	if FormatDate(time.Time{}, loc) != InvalidDate {
		t.Fatalf("expected invalid date placeholder")
	}
	if FormatDateTime(time.Time{}, nil) != InvalidDateTime {
		t.Fatalf("expected invalid date time placeholder")
	}
	if FormatTime(time.Time{}, nil) != InvalidTime {
		t.Fatalf("expected invalid time placeholder")
	}
}
