package value

import "fmt"

const defaultRainThreshold = 60

// RainPolicy is the humidity half of the rainfall rule: the highest relative
// humidity of a series must reach Threshold. Inclusive selects >= over >.
type RainPolicy struct {
	Threshold float64
	Inclusive bool
}

// DefaultRainPolicy is ">= 60".
func DefaultRainPolicy() RainPolicy {
	return RainPolicy{
		Threshold: defaultRainThreshold,
		Inclusive: true,
	}
}

func (p RainPolicy) HumidEnough(relativeHumidity float64) bool {
	if p.Inclusive {
		return relativeHumidity >= p.Threshold
	}

	return relativeHumidity > p.Threshold
}

func (p RainPolicy) String() string {
	if p.Inclusive {
		return fmt.Sprintf(">= %g", p.Threshold)
	}

	return fmt.Sprintf("> %g", p.Threshold)
}
