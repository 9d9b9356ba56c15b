package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-classifier-api-url classification service base URL
//	-classifier-model classification model identifier
//	-classifier-api-token classification service bearer token
//	-classifier-timeout classification call timeout
//	-generator-api-url generation service base URL
//	-generator-model generation model identifier
//	-generator-api-key generation service API key
//	-generator-timeout generation call timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var classifierAPIURL, classifierModel, classifierAPIToken string
	var classifierTimeout time.Duration
	var generatorAPIURL, generatorModel, generatorAPIKey string
	var generatorTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&classifierAPIURL, "classifier-api-url", "", "Classification service base URL")
	flag.StringVar(&classifierModel, "classifier-model", "", "Classification model identifier")
	flag.StringVar(&classifierAPIToken, "classifier-api-token", "", "Classification service bearer token")
	flag.DurationVar(&classifierTimeout, "classifier-timeout", 0, "Classification call timeout")
	flag.StringVar(&generatorAPIURL, "generator-api-url", "", "Generation service base URL")
	flag.StringVar(&generatorModel, "generator-model", "", "Generation model identifier")
	flag.StringVar(&generatorAPIKey, "generator-api-key", "", "Generation service API key")
	flag.DurationVar(&generatorTimeout, "generator-timeout", 0, "Generation call timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			Classifier: Classifier{
				APIURL:         classifierAPIURL,
				Model:          classifierModel,
				APIToken:       classifierAPIToken,
				RequestTimeout: classifierTimeout,
			},
			Generator: Generator{
				APIURL:         generatorAPIURL,
				Model:          generatorModel,
				APIKey:         generatorAPIKey,
				RequestTimeout: generatorTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step can fall through to other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
