package rest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("number is not finite")

type PredictRequest struct {
	Readings []Reading `json:"readings" validate:"dive"`
}

type Reading struct {
	Air *Number `json:"air" validate:"required"`
	Dew *Number `json:"dew" validate:"required"`
}

// Number is the raw JSON token of a numeric field. Both JSON numbers and
// numeric strings ("21.5") are accepted; anything else fails in Float64.
type Number string

func NewNumber(v float64) *Number {
	n := Number(strconv.FormatFloat(v, 'f', -1, 64))

	return &n
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(b)

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if _, err := n.Float64(); err != nil {
		return nil, err
	}

	return []byte(n), nil
}

func (n Number) Float64() (float64, error) {
	s := string(n)

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, errNotFinite)
	}

	return v, nil
}

type ScoredReading struct {
	AirTemp          float64 `json:"air_temp"`
	DewPoint         float64 `json:"dew_point"`
	RelativeHumidity float64 `json:"relative_humidity"`
}

type PredictResponse struct {
	SortedResults  []ScoredReading `json:"sorted_results"`
	Highest        ScoredReading   `json:"highest"`
	Prediction     string          `json:"prediction"`
	PredictionCode string          `json:"prediction_code"`
}

type Status struct {
	Message string `json:"message"`
}

// Error is the body of every non-2xx response.
type Error struct {
	// Error is a short message suitable for the UI.
	Error string `json:"error"`

	Code ErrorCode `json:"code"`

	SupportID string `json:"supportId"`
}

type ErrorCode string
