package config

import "time"

const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRateLimit         = 10
	DefaultRateBurst         = 20
	DefaultDriver            = "memory"
	DefaultMaxOpenConns      = 10
	DefaultMaxIdleConns      = 4
	DefaultTokenIssuer       = "go-pass-vault"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultVersion           = "dev"
	DefaultTrialPeriod       = 72 * time.Hour
	DefaultPaidPeriod        = 30 * 24 * time.Hour
	DefaultResubscribePolicy = "reject"
	DefaultExchange          = "vault.events"
	DefaultAdapterAddress    = "http://localhost:8080"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:       DefaultTokenIssuer,
			TokenDuration:     DefaultTokenDuration,
			Version:           DefaultVersion,
			TrialPeriod:       DefaultTrialPeriod,
			PaidPeriod:        DefaultPaidPeriod,
			ResubscribePolicy: DefaultResubscribePolicy,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDriver,
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Events: Events{
			Exchange: DefaultExchange,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
