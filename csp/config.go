package csp

import (
	"sync/atomic"

	"ownchan/log"
)

// Config carries optional channel settings. Zero values mean defaults.
type Config struct {
	// Name labels the channel in logs and errors, "chan#<id>" when empty.
	Name string

	// Logger overrides the package logger for this channel.
	Logger log.Logger
}

func NewConfig() *Config {
	return &Config{}
}

var pkgLogger atomic.Pointer[log.Logger]

func init() {
	var l log.Logger = log.DefaultLogger
	pkgLogger.Store(&l)
}

// SetLogger replaces the package logger used by selectors and by channels
// created without their own Config.Logger. It is safe to call while channels
// are in use.
func SetLogger(l log.Logger) {
	if l != nil {
		pkgLogger.Store(&l)
	}
}

func logger() log.Logger {
	return *pkgLogger.Load()
}
