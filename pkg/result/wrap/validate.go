package wrap

import (
	"reflect"

	"github.com/brunosps/usecase-go/pkg/result"
)

// Validation failure messages, in pipeline order.
const (
	msgNil         = "Value is nil"
	msgEmptyString = "Value is empty string"
	msgZero        = "Value is zero"
	msgEmptyArray  = "Value is empty array"
	msgEmptyObject = "Value is empty object"
	msgCustom      = "Custom validation failed"
)

// validateValue runs the opt-in checks in fixed order and stops at the
// first violation. Checks that were not enabled are skipped entirely.
func validateValue[T any](v T, vo *valueOptions[T]) (valid bool, errMsg string) {
	if vo.nilAsFailure && result.IsNil(v) {
		return false, msgNil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		if vo.emptyStringAsFailure && rv.Kind() == reflect.String && rv.Len() == 0 {
			return false, msgEmptyString
		}
		if vo.zeroAsFailure && isNumericZero(rv) {
			return false, msgZero
		}
		if vo.emptyArrayAsFailure && isEmptyArray(rv) {
			return false, msgEmptyArray
		}
		if vo.emptyObjectAsFailure && rv.Kind() == reflect.Map && rv.Len() == 0 {
			return false, msgEmptyObject
		}
	}

	if vo.validate != nil {
		if ok, msg := vo.validate(v); !ok {
			if msg == "" {
				msg = msgCustom
			}
			return false, msg
		}
	}

	return true, ""
}

func isNumericZero(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}

func isEmptyArray(rv reflect.Value) bool {
	k := rv.Kind()
	return (k == reflect.Slice || k == reflect.Array) && rv.Len() == 0
}
