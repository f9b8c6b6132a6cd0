package discord

import "time"

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	ColorInfo    = 3447003
	ColorSuccess = 3066993
	ColorWarning = 16776960
	ColorError   = 15158332

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	MaxFieldNameLen   = 256
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "Ttiring Notifier"
	UserAgent       = "Ttiring-Notifier/1.0"
	ReportBugTitle  = "Notification Service Error Report"
)
