package models

import "errors"

// ErrInvalidEnum is returned when a field holds a value outside its allowed set.
var ErrInvalidEnum = errors.New("invalid value")

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
