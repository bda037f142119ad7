package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command-line flags of flag.CommandLine into a
// partial [StructuredConfig]. Positional arguments stay in flag.Args.
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDriver, databaseDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var administrator string
	var initialFee uint64
	var trialPeriod, paidPeriod time.Duration
	var resubscribePolicy string
	var rateLimit float64
	var rateBurst int
	var amqpURL, exchange string
	var adapterAddress, adapterToken string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDriver, "db-driver", "", "State store driver: memory, postgres or sqlite")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&administrator, "admin", "", "Initial administrator address")
	flag.Uint64Var(&initialFee, "fee", 0, "Initial subscription fee")
	flag.DurationVar(&trialPeriod, "trial-period", 0, "Trial subscription length")
	flag.DurationVar(&paidPeriod, "paid-period", 0, "Paid subscription length")
	flag.StringVar(&resubscribePolicy, "resubscribe-policy", "", "Paying again while subscribed: reject or extend")
	flag.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per caller")
	flag.IntVar(&rateBurst, "rate-burst", 0, "Request burst per caller")
	flag.StringVar(&amqpURL, "amqp-url", "", "AMQP broker URL for audit events")
	flag.StringVar(&exchange, "amqp-exchange", "", "AMQP exchange for audit events")
	flag.StringVar(&adapterAddress, "server", "", "Vault server base URL (client)")
	flag.StringVar(&adapterToken, "token", "", "Bearer token (client)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			Administrator:     administrator,
			InitialFee:        initialFee,
			TrialPeriod:       trialPeriod,
			PaidPeriod:        paidPeriod,
			ResubscribePolicy: resubscribePolicy,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Events: Events{
			AMQPURL:  amqpURL,
			Exchange: exchange,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          adapterToken,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
