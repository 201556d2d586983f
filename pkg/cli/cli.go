// Package cli parses command line arguments and environment fallbacks.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings parsed from the command line.
type Config struct {
	ConfigPath string        // path to the YAML game config (optional)
	AssetDir   string        // directory with sprite images (optional)
	LogLevel   string        // debug, info, warn, error
	Headless   bool          // run without a window
	Timeout    time.Duration // stop after this long in headless mode (0 = unlimited)
	ShowHelp   bool
}

// ParseArgs parses args into a Config. Flags win over environment
// variables; GEMCROSS_HEADLESS and GEMCROSS_TIMEOUT are the fallbacks.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("gemcross", flag.ContinueOnError)

	config := &Config{}

	var timeoutSec int
	fs.StringVar(&config.ConfigPath, "config", "", "path to game config file")
	fs.StringVar(&config.AssetDir, "assets", "", "directory with sprite images")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.Headless, "headless", false, "run without a window")
	fs.IntVar(&timeoutSec, "timeout", 0, "headless timeout in seconds")
	fs.IntVar(&timeoutSec, "t", 0, "headless timeout in seconds (shorthand)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if !config.Headless {
		if v := os.Getenv("GEMCROSS_HEADLESS"); v != "" {
			config.Headless = v == "1" || strings.EqualFold(v, "true")
		}
	}

	if timeoutSec == 0 {
		if v := os.Getenv("GEMCROSS_TIMEOUT"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				timeoutSec = n
			}
		}
	}
	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must not be negative: %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	return config, nil
}

// PrintHelp writes usage information to stdout.
func PrintHelp() {
	fmt.Println(`gemcross - a tile-hopping arcade game

Usage:
  gemcross [options]

Options:
  -config PATH      path to game config file (YAML)
  -assets DIR       directory with sprite images (PNG); generated
                    placeholder sprites are used when omitted
  -log-level LEVEL  debug, info, warn, error (default: info)
  -headless         run without a window
  -timeout SEC      stop after SEC seconds in headless mode
  -help             show this help

Environment:
  GEMCROSS_HEADLESS=1   same as -headless
  GEMCROSS_TIMEOUT=SEC  same as -timeout SEC`)
}
