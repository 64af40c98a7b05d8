package service

// ValidationError marks bad input from the caller, as opposed to sentinel
// domain errors or store failures. Handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}
