package forms

import (
	"regexp"
	"strings"
)

var (
	CPFRX   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	PhoneRX = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	EmailRX = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func digits(v string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v)
}

// FormatCPF masks typed input as 000.000.000-00. Input with more than 11
// digits is returned unchanged.
func FormatCPF(v string) string {
	d := digits(v)
	if len(d) > 11 {
		return v
	}
	switch {
	case len(d) > 9:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case len(d) > 6:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	case len(d) > 3:
		return d[:3] + "." + d[3:]
	}
	return d
}

// FormatPhone masks typed input as (00) 00000-0000. Input with more than 11
// digits is returned unchanged.
func FormatPhone(v string) string {
	d := digits(v)
	if len(d) > 11 {
		return v
	}
	if len(d) <= 2 {
		return d
	}
	rest := d[2:]
	if len(rest) > 5 {
		rest = rest[:5] + "-" + rest[5:]
	}
	return "(" + d[:2] + ") " + rest
}

// FormatCEP masks typed input as 00000-000, dropping digits past the eighth.
func FormatCEP(v string) string {
	d := digits(v)
	if len(d) <= 5 {
		return d
	}
	if len(d) > 8 {
		d = d[:8]
	}
	return d[:5] + "-" + d[5:]
}
