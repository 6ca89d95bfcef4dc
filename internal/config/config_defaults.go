package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultDBDriver         = DriverSQLite
	DefaultDSN              = "file:blog.db?_foreign_keys=on"
	DefaultTokenIssuer      = "go-blog-platform"
	DefaultTokenDuration    = time.Hour
	DefaultConfirmationTTL  = time.Hour + 30*time.Minute
	DefaultPasswordHashCost = bcrypt.DefaultCost
	DefaultNotifierDriver   = NotifierLog
	DefaultMailAPITimeout   = 10 * time.Second
	DefaultSMTPPort         = 587
	DefaultConfirmationURL  = "http://localhost:3000/confirm-registration"
	DefaultLogLevel         = "debug"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported notifier drivers.
const (
	NotifierLog  = "log"
	NotifierSMTP = "smtp"
	NotifierHTTP = "http"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			ConfirmationTTL:  DefaultConfirmationTTL,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Notifier: Notifier{
			Driver:          DefaultNotifierDriver,
			ConfirmationURL: DefaultConfirmationURL,
			SMTP:            SMTP{Port: DefaultSMTPPort},
			HTTP:            MailAPI{Timeout: DefaultMailAPITimeout},
		},
	}
}
