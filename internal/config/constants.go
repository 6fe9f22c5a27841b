package config

import "time"

// Application info
const (
	AppName    = "HifzKeep"
	AppVersion = "1.0.0"
)

// Default settings
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultDueReviewLimit    = 20
	DefaultAccessTokenTTL    = 24 * time.Hour
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)
