package config

import "log/slog"

const EnvDev = "dev"

type App struct {
	Env  string `env:"APP_ENV" envDefault:"dev" validate:"oneof=dev prod"`
	Name string `env:"APP_NAME" envDefault:"raincast" validate:"required"`
}

func (a App) IsDev() bool {
	return a.Env == EnvDev
}

type Log struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	// FieldMaxLen cuts logged request and response dumps; 0 disables the cut.
	FieldMaxLen int `env:"LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gte=0"`
}
