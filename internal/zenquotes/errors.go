package zenquotes

import "errors"

// Failure kinds reported by Client. Wrapped errors keep the cause; callers
// match the kind with errors.Is.
var (
	ErrNetwork         = errors.New("network failure")
	ErrEmptyResult     = errors.New("empty result")
	ErrUnexpectedShape = errors.New("unexpected payload shape")
)

// Describe returns a short user-facing sentence for err.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResult):
		return "Nothing was returned for this request."
	case errors.Is(err, ErrUnexpectedShape):
		return "The service returned data in an unexpected format."
	case errors.Is(err, ErrNetwork):
		return "Could not reach the quotes service."
	default:
		return "Something went wrong. Check the log for details."
	}
}
