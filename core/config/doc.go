// Package config provides configuration management for hearth-mirror.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Storage: S3/MinIO credentials and the bucket holding graph dumps
//   - Dump: dump source (file or bucket), local path and object name
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dump.Path)
package config
