// Package format renders money and dates the way the business reads them (pt-BR).
package format

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	InvalidDate     = "Data inválida"
	InvalidDateTime = "Data/hora inválida"
	InvalidTime     = "Hora inválida"
)

var ErrInvalidAmount = errors.New("invalid amount")

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders d with two decimals and a comma separator, e.g. "10,50".
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatBRL renders d as Brazilian currency with digit grouping, e.g. "R$ 1.234,50".
// Digits come from the decimal itself, so amounts beyond float64 precision stay exact.
func FormatBRL(d decimal.Decimal) string {
	units, cents, _ := strings.Cut(FormatAmount(d.Abs()), ",")
	if n, err := strconv.ParseInt(units, 10, 64); err == nil {
		units = brPrinter.Sprintf("%d", n)
	} else {
		units = groupThousands(units)
	}

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + units + "," + cents
}

func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount reads user or legacy input such as "R$ 1.234,56", "10,50" or "10.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatDate renders t as "25/12/2023" in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.In(orLocal(loc)).Format("02/01/2006")
}

// FormatDateTime renders t as "25/12/2023 14:30" in loc.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidDateTime
	}
	return t.In(orLocal(loc)).Format("02/01/2006 15:04")
}

// FormatTime renders t as "14:30" in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidTime
	}
	return t.In(orLocal(loc)).Format("15:04")
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
