package config

import (
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Url             string        `envconfig:"URL"`
	MigrationsPath  string        `envconfig:"MIGRATIONS_PATH"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

// ExternalSystem points at the status service consulted before every debit.
// The client calls GET {URL}/200 and expects {"code":200,"description":"..."}.
type ExternalSystem struct {
	URL     string        `envconfig:"URL" default:"http://localhost:8081"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankaccount]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env            string          `envconfig:"APP_ENV" default:"development"`
	Server         *Server         `envconfig:"SERVER"`
	Log            *Log            `envconfig:"LOG"`
	DB             *DB             `envconfig:"DATABASE"`
	ExternalSystem *ExternalSystem `envconfig:"EXTERNAL_SYSTEM"`
	RateLimit      *RateLimit      `envconfig:"RATE_LIMIT"`
}
