package config

import (
	"fmt"
	"time"
)

// ClientStorage contains local persistence settings.
type ClientStorage struct {
	// DSN selects and addresses the storage backend.
	DSN string
	// Key is the storage key of the link document.
	Key string
}

// ClientExport contains export settings.
type ClientExport struct {
	// Dir is the export directory.
	Dir string
	// FileName is the fixed export file name.
	FileName string
}

// ClientIcons contains icon resolution settings.
type ClientIcons struct {
	// FaviconService is the favicon URL prefix.
	FaviconService string
}

// ClientUI contains terminal UI settings.
type ClientUI struct {
	// StatusTimeout is the lifetime of transient notifications.
	StatusTimeout time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the configuration view used by the linkdir client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Storage ClientStorage
	Export  ClientExport
	Icons   ClientIcons
	UI      ClientUI
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
			Key: cfg.Storage.Key,
		},
		Export: ClientExport{
			Dir:      cfg.Export.Dir,
			FileName: cfg.Export.FileName,
		},
		Icons: ClientIcons{
			FaviconService: cfg.App.FaviconService,
		},
		UI: ClientUI{
			StatusTimeout: cfg.App.StatusTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
