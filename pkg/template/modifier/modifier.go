// Package modifier provides ready-made modifiers for templates.
package modifier

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/askiada/go-toolbox/pkg/template"
)

// Upper maps every letter to its upper case.
func Upper(value string) string {
	return cases.Upper(language.Und).String(value)
}

// Lower maps every letter to its lower case.
func Lower(value string) string {
	return cases.Lower(language.Und).String(value)
}

// Title upper cases the first letter of every word and lower cases the rest.
func Title(value string) string {
	return cases.Title(language.Und).String(value)
}

// Trim removes leading and trailing white space.
func Trim(value string) string {
	return strings.TrimSpace(value)
}

// Quote wraps value in double quotes, escaping it as a Go string literal.
func Quote(value string) string {
	return strconv.Quote(value)
}

// Repeat returns a modifier repeating its input n times. A negative n is treated as 0.
func Repeat(n int) template.ModifierFunc {
	if n < 0 {
		n = 0
	}

	return func(value string) string {
		return strings.Repeat(value, n)
	}
}

// Builtins returns the modifiers registered by Register, by key.
func Builtins() map[string]template.ModifierFunc {
	return map[string]template.ModifierFunc{
		"upper":  Upper,
		"lower":  Lower,
		"title":  Title,
		"trim":   Trim,
		"quote":  Quote,
		"repeat": Repeat(2),
	}
}

// Register sets every builtin modifier on tpl. Values set earlier under the same keys are replaced.
func Register(tpl *template.Template) *template.Template {
	for key, mod := range Builtins() {
		tpl.Set(key, mod)
	}

	return tpl
}
