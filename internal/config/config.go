package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL       string `env:"DATABASE_URL,required"`
	JWTSecret         string `env:"JWT_SECRET,required"`
	JWTTTLMinutes     int    `env:"JWT_TTL_MINUTES" envDefault:"60"`
	AdminID           int    `env:"ADMIN_ID" envDefault:"1"`
	AdminUsername     string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`
	CORSOrigin        string `env:"CORS_ORIGIN" envDefault:"*"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
