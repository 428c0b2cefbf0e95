package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"raincast/pkg/errcodes"
)

const (
	DescriptionEmptyReadings        = "No readings provided"
	DescriptionInvalidReadingFormat = "Invalid input format"
	DescriptionTemperatureDomain    = "Temperature outside of the humidity formula domain"
)

// NewEmptyReadingsError is returned when a prediction is requested without readings.
func NewEmptyReadingsError() error {
	return failure.NewInvalidArgumentError(
		"empty readings",
		failure.WithCode(errcodes.EmptyReadings),
		failure.WithDescription(DescriptionEmptyReadings),
	)
}

// NewInvalidReadingFormatError wraps the reason a reading could not be turned
// into a pair of finite numbers.
func NewInvalidReadingFormatError(cause error) error {
	return failure.NewInvalidArgumentErrorFromError(
		cause,
		failure.WithCode(errcodes.InvalidReadingFormat),
		failure.WithDescription(DescriptionInvalidReadingFormat),
	)
}

func NewTemperatureOutOfDomainError(airTemp, dewPoint float64) error {
	return failure.NewInvalidArgumentError(
		fmt.Sprintf("relative humidity is not finite for air=%g dew=%g", airTemp, dewPoint),
		failure.WithCode(errcodes.TemperatureOutOfDomain),
		failure.WithDescription(DescriptionTemperatureDomain),
	)
}
