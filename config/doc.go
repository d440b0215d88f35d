// Package config loads streamkit application configuration from YAML files
// and environment variables using viper, with optional .env support via
// godotenv.
//
// Applications embed Config (or just the sections they need) in their own
// structs and call LoadConfig:
//
//	var cfg config.Config
//	if err := config.LoadConfig("ingest", &cfg); err != nil {
//	    ...
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
package config
