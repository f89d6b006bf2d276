package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		EncryptionSecret string `json:"encryption_secret"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Outlook struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURI  string `json:"redirect_uri"`
		AuthorizeURL string `json:"authorize_url"`
		TokenURL     string `json:"token_url"`
		Scope        string `json:"scope"`
	} `json:"outlook,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		MessagesURL       string   `json:"messages_url"`
		FoldersURL        string   `json:"folders_url"`
		PageSize          int      `json:"page_size"`
		MaxRetries        int      `json:"max_retries"`
		RetryAfterDefault Duration `json:"retry_after_default"`
		FetchTimeout      Duration `json:"fetch_timeout"`
	} `json:"sync,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`
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
			EncryptionSecret: jsonCfg.App.EncryptionSecret,
			Version:          jsonCfg.App.Version,
		},
		Outlook: Outlook{
			ClientID:     jsonCfg.Outlook.ClientID,
			ClientSecret: jsonCfg.Outlook.ClientSecret,
			RedirectURI:  jsonCfg.Outlook.RedirectURI,
			AuthorizeURL: jsonCfg.Outlook.AuthorizeURL,
			TokenURL:     jsonCfg.Outlook.TokenURL,
			Scope:        jsonCfg.Outlook.Scope,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			MessagesURL:       jsonCfg.Sync.MessagesURL,
			FoldersURL:        jsonCfg.Sync.FoldersURL,
			PageSize:          jsonCfg.Sync.PageSize,
			MaxRetries:        jsonCfg.Sync.MaxRetries,
			RetryAfterDefault: time.Duration(jsonCfg.Sync.RetryAfterDefault),
			FetchTimeout:      time.Duration(jsonCfg.Sync.FetchTimeout),
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
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
