package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del proceso, cargada desde env.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	DBDSN     string `env:"DB_DSN"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"nutricat"`

	// Zona usada para calcular la clave de día calendario (rollover,
	// quests, stats de hoy). Debe ser estable entre requests.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Load parsea env hacia Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resuelve la zona horaria configurada.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
