package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	MethodNotAllowed    failure.ErrorCode = "MethodNotAllowed"

	EmptyReadings          failure.ErrorCode = "EmptyReadings"          // readings missing or []
	InvalidReadingFormat   failure.ErrorCode = "InvalidReadingFormat"   // air/dew missing or not a number
	TemperatureOutOfDomain failure.ErrorCode = "TemperatureOutOfDomain" // humidity formula is undefined
)
