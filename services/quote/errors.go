package quote

import "fmt"

// InvalidOptionError indicates a selection key that is not in the rate catalog.
type InvalidOptionError struct {
	Field string
	Key   string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("unknown %s option %q", e.Field, e.Key)
}

// InvalidValueError indicates a numeric selection outside its domain.
type InvalidValueError struct {
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
