package template

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// tokenRegexp matches {{key}} and {{modifier:key}} placeholders.
var tokenRegexp = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+):?([^}]*)\}\}`)

// Template is a text with placeholders and the table of their values.
type Template struct {
	mu           sync.RWMutex
	text         string
	placeholders map[string]Value
}

// Create creates a template from text.
func Create(text string) *Template {
	return &Template{
		text:         text,
		placeholders: make(map[string]Value),
	}
}

// New is an alias of Create.
func New(text string) *Template {
	return Create(text)
}

// Text returns the text the template was created with.
func (t *Template) Text() string {
	return t.text
}

// Set stores the value of key, replacing the previous one. See ValueOf for the accepted types.
func (t *Template) Set(key string, value any) *Template {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.placeholders[key] = ValueOf(value)

	return t
}

// SetInt stores the value of a numeric key. The key is matched by its decimal text, {{1}} for 1.
func (t *Template) SetInt(key int, value any) *Template {
	return t.Set(strconv.Itoa(key), value)
}

// SetValues calls Set for every entry of values.
func (t *Template) SetValues(values map[string]any) *Template {
	for key, value := range values {
		t.Set(key, value)
	}

	return t
}

// Get returns the value stored for key.
func (t *Template) Get(key string) (Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.placeholders[key]

	return value, ok
}

// Render replaces every placeholder of the text with its resolved value. Identical placeholders are resolved
// once per call, so a modifier runs once for all the occurrences of the same placeholder.
func (t *Template) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := make(map[string]string)

	return tokenRegexp.ReplaceAllStringFunc(t.text, func(token string) string {
		if res, ok := resolved[token]; ok {
			return res
		}

		res := t.resolve(token)
		resolved[token] = res

		return res
	})
}

func (t *Template) resolve(token string) string {
	inner := strings.ReplaceAll(strings.ReplaceAll(token, "{{", ""), "}}", "")
	parts := strings.Split(inner, ":")

	modKey := parts[0]

	valKey := ""
	if len(parts) > 1 {
		valKey = parts[1]
	}

	if valKey == "" {
		return t.format(modKey)
	}

	res := t.format(valKey)
	if mod, ok := t.placeholders[modKey].Modifier(); ok {
		res = mod(res)
	}

	return res
}

// format returns the formatted value of key, or key itself when it has none.
func (t *Template) format(key string) string {
	if res, ok := t.placeholders[key].Format(); ok {
		return res
	}

	return key
}
