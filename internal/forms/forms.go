// Package forms validates and masks the sign-up and checkout inputs.
package forms

import (
	"net/url"
	"regexp"
	"strings"
)

type errors map[string][]string

func (e errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Get returns the first message recorded for field.
func (e errors) Get(field string) string {
	es := e[field]
	if len(es) == 0 {
		return ""
	}
	return es[0]
}

type Form struct {
	url.Values
	Errors errors
}

func New(data url.Values) *Form {
	return &Form{
		data,
		errors(map[string][]string{}),
	}
}

func (f *Form) Required(fields ...string) {
	for _, field := range fields {
		if strings.TrimSpace(f.Get(field)) == "" {
			f.Errors.Add(field, "Campo obrigatório")
		}
	}
}

func (f *Form) MatchesPattern(field string, pattern *regexp.Regexp, message string) {
	value := f.Get(field)
	if value == "" {
		return
	}
	if !pattern.MatchString(value) {
		f.Errors.Add(field, message)
	}
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

// FirstError returns the first message in field order, for single-line
// error displays.
func (f *Form) FirstError(fields ...string) string {
	for _, field := range fields {
		if msg := f.Errors.Get(field); msg != "" {
			return msg
		}
	}
	return ""
}
