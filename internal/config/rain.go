package config

import (
	"time"

	"raincast/internal/domain/value"
)

// Rain tunes the rainfall rule. The defaults give "highest humidity >= 60".
type Rain struct {
	Threshold        float64       `env:"RAIN_RH_THRESHOLD" envDefault:"60" validate:"gte=0,lte=100"`
	Inclusive        bool          `env:"RAIN_RH_INCLUSIVE" envDefault:"true"`
	HumidityCacheTTL time.Duration `env:"HUMIDITY_CACHE_TTL" envDefault:"0s" validate:"gte=0"`
}

func (r Rain) Policy() value.RainPolicy {
	return value.RainPolicy{
		Threshold: r.Threshold,
		Inclusive: r.Inclusive,
	}
}
