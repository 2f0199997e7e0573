package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Environment string `json:"env"`

	Build struct {
		BasePath      string   `json:"base"`
		OutputPath    string   `json:"out"`
		OutputFormat  string   `json:"format"`
		VendorModules []string `json:"vendor_modules"`
		DevServerHost string   `json:"dev_server_host"`
		DevServerPort int      `json:"dev_server_port"`
	} `json:"build,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Runtime struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"runtime,omitempty"`

	App struct {
		Version   string `json:"version"`
		LogLevel  string `json:"log_level"`
		LogFormat string `json:"log_format"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Environment: jsonCfg.Environment,
		Build: Build{
			BasePath:      jsonCfg.Build.BasePath,
			OutputPath:    jsonCfg.Build.OutputPath,
			OutputFormat:  jsonCfg.Build.OutputFormat,
			VendorModules: jsonCfg.Build.VendorModules,
			DevServerHost: jsonCfg.Build.DevServerHost,
			DevServerPort: jsonCfg.Build.DevServerPort,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Runtime.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Runtime.RequestTimeout),
		},
		App: App{
			Version:   jsonCfg.App.Version,
			LogLevel:  jsonCfg.App.LogLevel,
			LogFormat: jsonCfg.App.LogFormat,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
