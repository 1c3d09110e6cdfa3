package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every setting the server cannot run without is
// present after loading.
func ValidateConfig(cfg *Config) error {
	var errs []string

	required := map[string]string{
		"server port": cfg.ServerPort,
		"server host": cfg.ServerHost,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
		"db ssl mode": cfg.DBSSLMode,
		"jwt secret":  cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is not set", name))
		}
	}

	// Redis needs either a URL or host+port.
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errs = append(errs, "redis url or redis host/port must be set")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errs = append(errs, "db_password secret is required in production")
		}
		if cfg.JWTSecret == "dev-secret" {
			errs = append(errs, "jwt secret must not be the development default in production")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
