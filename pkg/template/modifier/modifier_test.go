package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-toolbox/pkg/template"
	"github.com/askiada/go-toolbox/pkg/template/modifier"
)

func TestModifiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "JAMIE ÉTÉ", modifier.Upper("Jamie été"))
	assert.Equal(t, "jamie été", modifier.Lower("JAMIE ÉTÉ"))
	assert.Equal(t, "Hello World", modifier.Title("hello wORLD"))
	assert.Equal(t, "a b", modifier.Trim("  a b \n"))
	assert.Equal(t, `"a\"b"`, modifier.Quote(`a"b`))
	assert.Equal(t, "???", modifier.Repeat(3)("?"))
	assert.Equal(t, "", modifier.Repeat(-1)("?"))
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tpl := modifier.Register(template.Create("{{upper:person}}: John is {{age}} years old{{repeat:?}} {{title:greeting}}")).
		Set("person", "Jamie").
		Set("age", 30).
		Set("greeting", "good morning")

	assert.Equal(t, "JAMIE: John is 30 years old?? Good Morning", tpl.Render())

	for key := range modifier.Builtins() {
		value, ok := tpl.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, template.KindModifier, value.Kind(), key)
	}
}

func TestRegisterOverride(t *testing.T) {
	t.Parallel()

	tpl := modifier.Register(template.Create("{{upper:a}}")).
		Set("upper", "not a modifier").
		Set("a", "a")

	assert.Equal(t, "a", tpl.Render())
}
