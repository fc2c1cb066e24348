package result

import (
	"errors"
	"fmt"
	"reflect"
)

// IsNil reports whether i is nil, including typed nil pointers and other
// nilable kinds hiding behind a non-nil interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// CoerceError turns an arbitrary recovered value into a real error. Errors
// pass through unchanged; anything else is captured through its default
// string form, which loses structured fields of non-error payloads.
func CoerceError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	if v == nil {
		return errors.New("unknown error")
	}
	return fmt.Errorf("%v", v)
}
