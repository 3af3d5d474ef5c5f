package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment; every field has a development
// default so a bare `stickplanet` starts against a local database with
// the local identity provider.
type Config struct {
	Port             string `env:"PORT" env-default:"8080"`
	DBPath           string `env:"DB_PATH" env-default:"data/stickplanet.db"`
	SecretKey        string `env:"SECRET_KEY" env-default:"change_me_in_production"`
	Timezone         string `env:"TZ" env-default:"Asia/Shanghai"`
	UploadDir        string `env:"UPLOAD_DIR" env-default:"data/uploads"`
	IdentityEndpoint string `env:"IDENTITY_ENDPOINT" env-default:""`
	CookieSecure     bool   `env:"COOKIE_SECURE" env-default:"false"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment config: %w", err)
	}
	return cfg, nil
}
