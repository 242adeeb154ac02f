package config

const (
	defaultConfigPath         = "~/.config/snkfooter/config.toml"
	projectConfigName         = "snkfooter.toml"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
	defaultFallbackDurationMS = 82100
	defaultLock               = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Footer: Footer{
			FallbackDurationMS: defaultFallbackDurationMS,
			Lock:               defaultLock,
		},
	}
}
