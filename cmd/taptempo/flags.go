package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Counter flags
	FlagMeter       = "meter"
	FlagMethod      = "method"
	FlagIdleTimeout = "idle-timeout"
	FlagWindowSize  = "window-size"
)
