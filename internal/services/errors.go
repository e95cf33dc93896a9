package services

import "fmt"

// InvalidError reports a request the analysis cannot act on. Key names the
// label-pack entry used to show the message in the caller's language.
type InvalidError struct {
	Key string
	Msg string
}

func (e *InvalidError) Error() string { return e.Msg }

// NewInvalidError returns an *InvalidError without a translation key.
func NewInvalidError(msg string) error { return &InvalidError{Msg: msg} }

func newInvalidErrorf(key, format string, args ...any) error {
	return &InvalidError{Key: key, Msg: fmt.Sprintf(format, args...)}
}
