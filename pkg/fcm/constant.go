package fcm

import "time"

// MaxBatchSize is the multicast ceiling imposed by FCM.
const MaxBatchSize = 500

const (
	androidPriority = "high"
	androidColor    = "#FF6B35"
	defaultSound    = "default"
)

const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 500 * time.Millisecond
	DefaultRetryMaxDelay = 5 * time.Second
)

func DefaultConfig() Config {
	return Config{
		RetryAttempts: DefaultRetryAttempts,
		RetryDelay:    DefaultRetryDelay,
		RetryMaxDelay: DefaultRetryMaxDelay,
	}
}
