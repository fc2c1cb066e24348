package wrap

import "errors"

// Mapping classifies matching errors under a failure tag. Mappings are
// checked in caller order and the first match wins, so more specific
// predicates belong before generic ones.
type Mapping struct {
	Matches     func(err error) bool
	FailureType string
}

// MapAs matches errors assignable to E via errors.As.
func MapAs[E error](failureType string) Mapping {
	return Mapping{
		Matches: func(err error) bool {
			var target E
			return errors.As(err, &target)
		},
		FailureType: failureType,
	}
}

// MapIs matches errors equal to target via errors.Is.
func MapIs(target error, failureType string) Mapping {
	return Mapping{
		Matches:     func(err error) bool { return errors.Is(err, target) },
		FailureType: failureType,
	}
}

// MapMatch builds a mapping from an arbitrary predicate.
func MapMatch(matches func(err error) bool, failureType string) Mapping {
	return Mapping{Matches: matches, FailureType: failureType}
}

// failureTypeFor returns the tag of the first mapping claiming err, or the
// configured default.
func (o *options) failureTypeFor(err error) string {
	for _, m := range o.mappings {
		if m.Matches != nil && m.Matches(err) {
			return m.FailureType
		}
	}
	return o.defaultType
}
