// Package config fills configuration structs from environment variables.
//
// Fields are described with caarlos0/env struct tags. A .env file in the
// working directory is loaded once per process, if present, before the first
// parse; explicit dotenv files can be added with WithDotenv.
//
//	type Config struct {
//		PresetsFile  string `env:"RENDER_PRESETS_FILE"`
//		MaxBodyBytes int64  `env:"RENDER_MAX_BODY_BYTES" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already set in the process environment always win over values
// from dotenv files.
package config
