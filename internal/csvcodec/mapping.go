package csvcodec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

var (
	ErrNotNumber   = errors.New("not a number")
	ErrNotInteger  = errors.New("not an integer")
	ErrNotBool     = errors.New("not a boolean")
	ErrUnsupported = errors.New("unsupported field type")
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// FieldError reports a value that could not be stored in its struct field.
type FieldError struct {
	Row    int // line number in the source text, header is line 1
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("line %d, column %q: cannot use %q: %v", e.Row, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("column %q: cannot use %q: %v", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Marshal converts a struct into a record. Columns come from `csv` struct tags
// in field order; untagged fields and fields tagged "-" are skipped.
func Marshal(v any) (Record, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return Record{}, fmt.Errorf("marshal %T: %w", v, ErrUnsupported)
	}

	rt := rv.Type()
	record := NewRecord(rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		column, ok := columnName(rt.Field(i))
		if !ok {
			continue
		}
		value, err := encodeField(rv.Field(i))
		if err != nil {
			return Record{}, fmt.Errorf("marshal %s.%s: %w", rt.Name(), rt.Field(i).Name, err)
		}
		record.Set(column, value)
	}
	return record, nil
}

// MarshalAll converts every item, keeping order.
func MarshalAll[T any](items []T) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		record, err := Marshal(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Unmarshal fills the struct pointed to by dst from record. Columns absent from
// the record leave their field untouched. Blank values reset a field to its
// zero value (nil for pointers).
func Unmarshal(record Record, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal into %T: %w", dst, ErrUnsupported)
	}

	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		column, ok := columnName(rt.Field(i))
		if !ok {
			continue
		}
		value, ok := record.Get(column)
		if !ok {
			continue
		}
		if err := decodeField(rv.Field(i), value); err != nil {
			return &FieldError{Column: column, Value: value.String(), Err: err}
		}
	}
	return nil
}

// UnmarshalAll decodes records into a new slice of T. The first failing record
// aborts decoding; its FieldError carries the source line number.
func UnmarshalAll[T any](records []Record) ([]T, error) {
	items := make([]T, 0, len(records))
	for i, record := range records {
		var item T
		if err := Unmarshal(record, &item); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Row = i + 2 // account for the header line
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func columnName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("csv")
	if tag == "" || tag == "-" {
		return "", false
	}
	return tag, true
}

func encodeField(fv reflect.Value) (Value, error) {
	if fv.Type() == decimalType {
		return NumberValue(fv.Interface().(decimal.Decimal)), nil
	}

	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return NullValue(), nil
		}
		return encodeField(fv.Elem())
	case reflect.String:
		return TextValue(fv.String()), nil
	case reflect.Bool:
		return BoolValue(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(fv.Int()), nil
	case reflect.Float32, reflect.Float64:
		return NumberValue(decimal.NewFromFloat(fv.Float())), nil
	}
	return Value{}, fmt.Errorf("%s: %w", fv.Type(), ErrUnsupported)
}

func decodeField(fv reflect.Value, v Value) error {
	if fv.Kind() == reflect.Pointer {
		if v.IsBlank() {
			fv.SetZero()
			return nil
		}
		elem := reflect.New(fv.Type().Elem())
		if err := decodeField(elem.Elem(), v); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	}

	if fv.Kind() == reflect.String {
		fv.SetString(v.String())
		return nil
	}

	if v.IsBlank() {
		fv.SetZero()
		return nil
	}

	if fv.Type() == decimalType {
		if v.Kind() != Number {
			return ErrNotNumber
		}
		fv.Set(reflect.ValueOf(v.Number()))
		return nil
	}

	switch fv.Kind() {
	case reflect.Bool:
		if v.Kind() != Bool {
			return ErrNotBool
		}
		fv.SetBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() != Number {
			return ErrNotNumber
		}
		if !v.Number().IsInteger() {
			return ErrNotInteger
		}
		n := v.Number().IntPart()
		if fv.OverflowInt(n) {
			return ErrNotInteger
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if v.Kind() != Number {
			return ErrNotNumber
		}
		f, _ := v.Number().Float64()
		fv.SetFloat(f)
	default:
		return fmt.Errorf("%s: %w", fv.Type(), ErrUnsupported)
	}
	return nil
}
