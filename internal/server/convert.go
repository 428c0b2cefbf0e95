package server

import (
	"fmt"

	"raincast/internal/domain"
	"raincast/internal/domain/entity"
	"raincast/pkg/rest"
)

func newDomainReadings(readings []rest.Reading) ([]entity.Reading, error) {
	result := make([]entity.Reading, 0, len(readings))

	for i, r := range readings {
		reading, err := newDomainReading(r)
		if err != nil {
			return nil, domain.NewInvalidReadingFormatError(fmt.Errorf("reading %d: %w", i, err))
		}

		result = append(result, reading)
	}

	return result, nil
}

func newDomainReading(r rest.Reading) (entity.Reading, error) {
	if r.Air == nil || r.Dew == nil {
		return entity.Reading{}, errMissingField
	}

	air, err := r.Air.Float64()
	if err != nil {
		return entity.Reading{}, fmt.Errorf("air: %w", err)
	}

	dew, err := r.Dew.Float64()
	if err != nil {
		return entity.Reading{}, fmt.Errorf("dew: %w", err)
	}

	return entity.Reading{
		AirTemp:  air,
		DewPoint: dew,
	}, nil
}

func newRESTScoredReading(r entity.ScoredReading) rest.ScoredReading {
	return rest.ScoredReading{
		AirTemp:          r.AirTemp,
		DewPoint:         r.DewPoint,
		RelativeHumidity: r.RelativeHumidity,
	}
}

func newRESTPredictResponse(p entity.Prediction) rest.PredictResponse {
	sorted := make([]rest.ScoredReading, 0, len(p.SortedResults))
	for _, r := range p.SortedResults {
		sorted = append(sorted, newRESTScoredReading(r))
	}

	return rest.PredictResponse{
		SortedResults:  sorted,
		Highest:        newRESTScoredReading(p.Highest),
		Prediction:     p.Chance.Message(),
		PredictionCode: p.Chance.String(),
	}
}
