package log

import "go.uber.org/zap"

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// Service is attached to every line as the "service" field when set.
	Service string
}

type zapLogger struct {
	sugar *zap.SugaredLogger
	cfg   ZapConfig
}
