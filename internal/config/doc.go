// Package config defines the application configuration structure and the
// viper-based loading of it from environment variables and config files.
package config
