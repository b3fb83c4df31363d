package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Input struct {
		Path  string
		Sheet string
	} `mapstructure:"input"`

	Output struct {
		Path      string
		BatchSize int `mapstructure:"batch_size"`
	} `mapstructure:"output"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled  bool
		Textfile string
	} `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("input.path", "docs/Robocizna/labours.xlsx")
	v.SetDefault("input.sheet", "")
	v.SetDefault("output.path", "supabase/migrations/20260225_002_labour_seed.sql")
	v.SetDefault("output.batch_size", 100)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "labour_seed.prom")
}

// Load читает конфиг. Файл необязателен: без него работают значения по умолчанию.
// Переопределение через ENV: APP_OUTPUT_PATH, APP_POSTGRES_DSN и т.д.
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return c, err
			}
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
