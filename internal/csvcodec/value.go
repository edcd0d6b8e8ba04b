package csvcodec

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// Null is only produced when marshalling absent optional fields.
	// The parser never returns it.
	Null Kind = iota
	Bool
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "null"
	}
}

// Value is a single CSV field after classification.
type Value struct {
	kind Kind
	b    bool
	num  decimal.Decimal
	text string
}

// Constructors for each kind. NullValue is the zero Value.
func BoolValue(b bool) Value              { return Value{kind: Bool, b: b} }
func NumberValue(d decimal.Decimal) Value { return Value{kind: Number, num: d} }
func TextValue(s string) Value            { return Value{kind: Text, text: s} }
func NullValue() Value                    { return Value{} }
func IntValue(i int64) Value              { return NumberValue(decimal.NewFromInt(i)) }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool is only meaningful when Kind is Bool.
func (v Value) Bool() bool { return v.b }

// Number is only meaningful when Kind is Number.
func (v Value) Number() decimal.Decimal { return v.num }

// IsBlank reports whether v is Null or empty text. Blank cells decode to zero values.
func (v Value) IsBlank() bool { return v.kind == Null || (v.kind == Text && v.text == "") }

// Equal compares kind and textual form, so 25.5 and 25.50 are equal numbers.
func (v Value) Equal(other Value) bool { return v.kind == other.kind && v.String() == other.String() }

// String returns the textual form written to CSV. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Number:
		return v.num.String()
	case Text:
		return v.text
	default:
		return ""
	}
}

// Classify turns a raw field into a typed Value: the exact literals "true" and
// "false" become booleans, anything decimal-parseable becomes a number and
// everything else stays text. No schema is consulted.
func Classify(field string) Value {
	switch field {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}

	trimmed := strings.TrimSpace(field)
	if trimmed != "" {
		if d, err := decimal.NewFromString(trimmed); err == nil {
			return NumberValue(d)
		}
	}

	return TextValue(trimmed)
}
