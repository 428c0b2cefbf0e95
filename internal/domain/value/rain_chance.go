package value

// RainChance is the binary outcome of the rainfall rule.
type RainChance string

const (
	RainChanceHigh RainChance = "HIGH_RAIN"
	RainChanceLow  RainChance = "LOW_RAIN"
)

func (c RainChance) String() string {
	return string(c)
}

// Message is the human readable text shown by the frontend.
func (c RainChance) Message() string {
	if c == RainChanceHigh {
		return "High chance of rainfall 🌧️"
	}

	return "Low chance of rainfall ☀️"
}
