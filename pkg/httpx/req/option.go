package req

import "git.appkode.ru/pub/go/failure"

type options struct {
	validationCode        failure.ErrorCode
	validationDescription string
}

type Option func(*options)

func WithValidationCode(code failure.ErrorCode) Option {
	return func(o *options) {
		o.validationCode = code
	}
}

// WithValidationDescription replaces the validator message shown to clients.
func WithValidationDescription(description string) Option {
	return func(o *options) {
		o.validationDescription = description
	}
}
