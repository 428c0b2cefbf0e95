package entity

import "raincast/internal/domain/value"

type Prediction struct {
	// SortedResults ascending by relative humidity, stable for equal values.
	SortedResults []ScoredReading
	// Highest is the first reading in input order with the maximal humidity.
	Highest ScoredReading
	Chance  value.RainChance
}
