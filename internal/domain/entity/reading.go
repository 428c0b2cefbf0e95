package entity

// Reading is one sample: air temperature and dew point, °C.
type Reading struct {
	AirTemp  float64
	DewPoint float64
}

// ScoredReading is a Reading with its relative humidity, rounded to 2 places.
type ScoredReading struct {
	Reading
	RelativeHumidity float64
}
