package template

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindModifier
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindModifier:
		return "modifier"
	default:
		return "invalid"
	}
}

// ModifierFunc transforms the resolved text of a placeholder.
type ModifierFunc func(value string) string

// Value is the value of a placeholder. The zero Value is invalid and formats to nothing.
type Value struct {
	kind Kind
	text string
	flag bool
	mod  ModifierFunc
}

func String(s string) Value {
	return Value{kind: KindString, text: s}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, text: formatNumber(f, 64)}
}

func Int(i int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

func Uint(u uint64) Value {
	return Value{kind: KindNumber, text: strconv.FormatUint(u, 10)}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func Null() Value {
	return Value{kind: KindNull}
}

// Modifier returns a modifier value. A nil function gives an invalid value.
func Modifier(fn ModifierFunc) Value {
	if fn == nil {
		return Value{}
	}

	return Value{kind: KindModifier, mod: fn}
}

// ValueOf converts a Go value. Unsupported types give an invalid value.
func ValueOf(value any) Value {
	switch val := value.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return Uint(uint64(val))
	case uint8:
		return Uint(uint64(val))
	case uint16:
		return Uint(uint64(val))
	case uint32:
		return Uint(uint64(val))
	case uint64:
		return Uint(val)
	case float32:
		return Value{kind: KindNumber, text: formatNumber(float64(val), 32)}
	case float64:
		return Number(val)
	case ModifierFunc:
		return Modifier(val)
	case func(string) string:
		return Modifier(val)
	default:
		return Value{}
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Format returns the text inserted for the value. Modifiers and invalid values have no text.
func (v Value) Format() (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return v.text, true
	case KindBool:
		if v.flag {
			return "true", true
		}

		return "false", true
	case KindNull:
		return "NULL", true
	default:
		return "", false
	}
}

// Modifier returns the function of a modifier value.
func (v Value) Modifier() (ModifierFunc, bool) {
	if v.kind != KindModifier {
		return nil, false
	}

	return v.mod, true
}

// formatNumber writes f the way JavaScript prints numbers: shortest round-trip digits, no fraction for
// integers and the exponent form outside of [1e-6, 1e21).
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		res := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exponent, _ := strings.Cut(res, "e")
		sign := exponent[:1]

		exp, err := strconv.Atoi(exponent[1:])
		if err != nil {
			return res
		}

		return mantissa + "e" + sign + strconv.Itoa(exp)
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
