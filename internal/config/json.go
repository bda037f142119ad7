package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		Version           string   `json:"version"`
		Administrator     string   `json:"administrator"`
		InitialFee        uint64   `json:"initial_fee"`
		TrialPeriod       Duration `json:"trial_period"`
		PaidPeriod        Duration `json:"paid_period"`
		ResubscribePolicy string   `json:"resubscribe_policy"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Events struct {
		AMQPURL  string `json:"amqp_url"`
		Exchange string `json:"exchange"`
	} `json:"events,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
		Passphrase     string   `json:"passphrase"`
	} `json:"adapter,omitempty"`
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
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			Version:           jsonCfg.App.Version,
			Administrator:     jsonCfg.App.Administrator,
			InitialFee:        jsonCfg.App.InitialFee,
			TrialPeriod:       time.Duration(jsonCfg.App.TrialPeriod),
			PaidPeriod:        time.Duration(jsonCfg.App.PaidPeriod),
			ResubscribePolicy: jsonCfg.App.ResubscribePolicy,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		Events: Events{
			AMQPURL:  jsonCfg.Events.AMQPURL,
			Exchange: jsonCfg.Events.Exchange,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
			Passphrase:     jsonCfg.Adapter.Passphrase,
		},
	}

	return cfg, nil
}

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
