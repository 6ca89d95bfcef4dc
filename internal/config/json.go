package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		ConfirmationTTL  Duration `json:"confirmation_ttl"`
		PasswordHashCost int      `json:"password_hash_cost"`
		AdminLogin       string   `json:"admin_login"`
		AdminPassword    string   `json:"admin_password"`
		TestingEndpoints bool     `json:"testing_endpoints"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Notifier struct {
		Driver          string `json:"driver"`
		From            string `json:"from"`
		ConfirmationURL string `json:"confirmation_url"`
		SMTP            struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"smtp,omitempty"`
		HTTP struct {
			URL     string   `json:"url"`
			APIKey  string   `json:"api_key"`
			Timeout Duration `json:"timeout"`
		} `json:"http,omitempty"`
	} `json:"notifier,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			ConfirmationTTL:  time.Duration(jsonCfg.App.ConfirmationTTL),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			AdminLogin:       jsonCfg.App.AdminLogin,
			AdminPassword:    jsonCfg.App.AdminPassword,
			TestingEndpoints: jsonCfg.App.TestingEndpoints,
			LogLevel:         jsonCfg.App.LogLevel,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Notifier: Notifier{
			Driver:          jsonCfg.Notifier.Driver,
			From:            jsonCfg.Notifier.From,
			ConfirmationURL: jsonCfg.Notifier.ConfirmationURL,
			SMTP: SMTP{
				Host:     jsonCfg.Notifier.SMTP.Host,
				Port:     jsonCfg.Notifier.SMTP.Port,
				Username: jsonCfg.Notifier.SMTP.Username,
				Password: jsonCfg.Notifier.SMTP.Password,
			},
			HTTP: MailAPI{
				URL:     jsonCfg.Notifier.HTTP.URL,
				APIKey:  jsonCfg.Notifier.HTTP.APIKey,
				Timeout: time.Duration(jsonCfg.Notifier.HTTP.Timeout),
			},
		},
		JSONFilePath: "",
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
