package log

// Logger modes.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Encodings.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Level names accepted in configuration.
const (
	LevelDebug  = "debug"
	LevelInfo   = "info"
	LevelWarn   = "warn"
	LevelError  = "error"
	LevelFatal  = "fatal"
	LevelPanic  = "panic"
	LevelDPanic = "dpanic"
)
