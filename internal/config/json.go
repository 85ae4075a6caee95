package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredJSONConfig is the on-disk layout of the optional config file.
// Files ending in .yaml or .yml are read as YAML with the same keys.
type StructuredJSONConfig struct {
	App struct {
		FaviconService string   `json:"favicon_service" yaml:"favicon_service"`
		StatusTimeout  Duration `json:"status_timeout" yaml:"status_timeout"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DSN string `json:"dsn" yaml:"dsn"`
		Key string `json:"key" yaml:"key"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Export struct {
		Dir      string `json:"dir" yaml:"dir"`
		FileName string `json:"file_name" yaml:"file_name"`
	} `json:"export,omitempty" yaml:"export,omitempty"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	switch strings.ToLower(filepath.Ext(jsonFilePath)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			FaviconService: jsonCfg.App.FaviconService,
			StatusTimeout:  time.Duration(jsonCfg.App.StatusTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
			Key: jsonCfg.Storage.Key,
		},
		Export: Export{
			Dir:      jsonCfg.Export.Dir,
			FileName: jsonCfg.Export.FileName,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON: a duration string
// or a number of nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(raw); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %s", raw)
	}
	*d = Duration(time.Duration(n))
	return nil
}
