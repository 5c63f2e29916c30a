// Package template renders text templates holding {{key}} and {{modifier:key}} placeholders.
//
// A Template is created from an immutable text and filled with values through Set. A value is a string, a
// number, a boolean, null or a modifier function turning a string into another string. Render replaces every
// placeholder with the formatted value of its key:
//
//	tpl := template.Create("Hello {{name}}, you are {{red:age}}!").
//		Set("name", "World").
//		Set("age", 30).
//		Set("red", func(s string) string { return "<" + s + ">" })
//	tpl.Render() // Hello World, you are <30>!
//
// A key without value renders as the key itself, null renders as NULL. In the {{modifier:key}} form the
// modifier is skipped when it is not a function. Text which does not follow the placeholder grammar, such
// as {{}} or {{*}}, is left untouched. Rendering never fails and never rescans the inserted values.
package template
