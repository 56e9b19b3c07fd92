package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding, json or console.
	Format string `mapstructure:"format" default:"console"`
	// Output is a zap sink such as stderr, stdout or a file path.
	Output string `mapstructure:"output" default:"stderr"`
}
