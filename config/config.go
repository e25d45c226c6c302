package config

import (
	"time"
)

// Server holds HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"5000"`
}

// Mongo holds document-store settings for the accounts repository.
type Mongo struct {
	URI        string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"DATABASE" default:"bank_app"`
	Collection string        `envconfig:"COLLECTION" default:"accounts"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Postgres holds relational-store settings for the accounts repository.
type Postgres struct {
	Url string `envconfig:"URL"`
}

// Persistence selects and configures the accounts repository backend.
type Persistence struct {
	Driver   string   `envconfig:"DRIVER" default:"mongo"`
	Mongo    Mongo    `envconfig:"MONGO"`
	Postgres Postgres `envconfig:"POSTGRES"`
}

// Whitelist configures the Ministry-of-Finance VAT white-list client used to
// verify company tax IDs at account creation.
type Whitelist struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://wl-api.mf.gov.pl"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// SMTP configures the outbound mail notifier for history emails.
type SMTP struct {
	Host    string `envconfig:"HOST"`
	Port    int    `envconfig:"PORT" default:"587"`
	From    string `envconfig:"FROM" default:"no-reply@bank.local"`
	User    string `envconfig:"USER"`
	Pass    string `envconfig:"PASS"`
	Enabled bool   `envconfig:"ENABLED" default:"false"`
}

// Promo selects the promotional-bonus policy applied at personal account
// creation. Two generations of the rule exist; the default matches the most
// recent one.
type Promo struct {
	Policy string `envconfig:"POLICY" default:"zero-override"`
}

// RateLimit configures the per-IP request limiter.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Log configures the application logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bank]"`
}

// App is the root application configuration, loaded from the environment.
type App struct {
	Env         string      `envconfig:"APP_ENV" default:"development"`
	Server      Server      `envconfig:"SERVER"`
	Persistence Persistence `envconfig:"PERSISTENCE"`
	Whitelist   Whitelist   `envconfig:"WHITELIST"`
	SMTP        SMTP        `envconfig:"SMTP"`
	Promo       Promo       `envconfig:"PROMO"`
	RateLimit   RateLimit   `envconfig:"RATE_LIMIT"`
	Log         Log         `envconfig:"LOG"`
}
