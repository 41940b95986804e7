package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from a JSON string in the
// usual Go syntax (e.g. "30s", "15m").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types. It exists so that durations can be written as human-readable
// strings in the config file.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey    string   `json:"encryption_key"`
		MasterPassphrase string   `json:"master_passphrase"`
		KeySalt          string   `json:"key_salt"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		S3 struct {
			Endpoint      string `json:"endpoint"`
			Region        string `json:"region"`
			AccessKey     string `json:"access_key"`
			SecretKey     string `json:"secret_key"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			EncryptionKey:    jsonCfg.App.EncryptionKey,
			MasterPassphrase: jsonCfg.App.MasterPassphrase,
			KeySalt:          jsonCfg.App.KeySalt,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			S3: S3{
				Endpoint:      jsonCfg.Storage.S3.Endpoint,
				Region:        jsonCfg.Storage.S3.Region,
				AccessKey:     jsonCfg.Storage.S3.AccessKey,
				SecretKey:     jsonCfg.Storage.S3.SecretKey,
				PublicBaseURL: jsonCfg.Storage.S3.PublicBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
