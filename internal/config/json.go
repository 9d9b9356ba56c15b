package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly [Duration] type so that operators can write durations as
// "24h" or "60s" in the config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		Classifier struct {
			APIURL         string   `json:"api_url"`
			Model          string   `json:"model"`
			APIToken       string   `json:"api_token"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"classifier,omitempty"`

		Generator struct {
			APIURL         string   `json:"api_url"`
			Model          string   `json:"model"`
			APIKey         string   `json:"api_key"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"generator,omitempty"`
	} `json:"remote,omitempty"`
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
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			CORSAllowedOrigins: jsonCfg.App.CORSAllowedOrigins,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			Classifier: Classifier{
				APIURL:         jsonCfg.Remote.Classifier.APIURL,
				Model:          jsonCfg.Remote.Classifier.Model,
				APIToken:       jsonCfg.Remote.Classifier.APIToken,
				RequestTimeout: time.Duration(jsonCfg.Remote.Classifier.RequestTimeout),
			},
			Generator: Generator{
				APIURL:         jsonCfg.Remote.Generator.APIURL,
				Model:          jsonCfg.Remote.Generator.Model,
				APIKey:         jsonCfg.Remote.Generator.APIKey,
				RequestTimeout: time.Duration(jsonCfg.Remote.Generator.RequestTimeout),
			},
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
