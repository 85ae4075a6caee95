package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-d storage DSN ("memory", "file://<path>" or a SQLite path)
//	-k storage key of the link document
//	-export-dir directory for exported files
//	-export-name export file name
//	-favicon-service favicon URL prefix
//	-status-timeout notification lifetime (e.g., "3s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		dsn            string
		storageKey     string
		exportDir      string
		exportName     string
		faviconService string
		statusTimeout  time.Duration
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("linkdir", flag.ContinueOnError)
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&storageKey, "k", "", "Storage key")
	fs.StringVar(&exportDir, "export-dir", "", "Export directory")
	fs.StringVar(&exportName, "export-name", "", "Export file name")
	fs.StringVar(&faviconService, "favicon-service", "", "Favicon service URL prefix")
	fs.DurationVar(&statusTimeout, "status-timeout", 0, "Notification lifetime (e.g., 3s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FaviconService: faviconService,
			StatusTimeout:  statusTimeout,
		},
		Storage: Storage{
			DSN: dsn,
			Key: storageKey,
		},
		Export: Export{
			Dir:      exportDir,
			FileName: exportName,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
