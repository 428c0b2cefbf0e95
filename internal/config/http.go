package config

import (
	"net"
	"strconv"
	"time"
)

type HTTP struct {
	Host              string        `env:"HTTP_HOST"`
	Port              int           `env:"PORT" envDefault:"5000" validate:"gte=1,lte=65535"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
}

func (h HTTP) Address() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

type Probe struct {
	Address string `env:"PROBE_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	Address string `env:"METRICS_ADDRESS" envDefault:":9090"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1"`
}
