package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"goSignOAuth1/auth"
)

// Config holds the worker settings read from the environment.
type Config struct {
	//A value used by the Consumer to identify itself to the Service Provider.
	ConsumerKey string
	//A secret used by the Consumer to establish ownership of the Consumer Key.
	ConsumerSecret string
	//Callback the provider redirects the resource owner back to.
	CallbackURL string
	//Signature method identifier carried in oauth_signature_method.
	SignatureMethod string
	//Default HTTP method for signing jobs that do not pick one.
	HTTPMethod string
	//Nonce mode: derived, base64, hex or uuid.
	NonceMode string
	//Realm placed in assembled Authorization headers, optional.
	Realm string
	//SQS url to pull signing jobs.
	InputQueue string
	//SQS url for signed parameter sets.
	OutputQueue string
	//AWS region for the SQS service.
	AWSRegion string
}

// Load reads the worker configuration from the environment. A .env file is
// loaded first when present so local runs and tests can use one; in Lambda
// the variables come from the function configuration.
func Load() (*Config, error) {
	godotenv.Load()
	cfg := &Config{
		ConsumerKey:     loadEnvString("OAUTH_CONSUMER_KEY", ""),
		ConsumerSecret:  loadEnvString("OAUTH_CONSUMER_SECRET", ""),
		CallbackURL:     loadEnvString("OAUTH_CALLBACK_URL", ""),
		SignatureMethod: loadEnvString("OAUTH_SIGNATURE_METHOD", "HMAC_SHA1"),
		HTTPMethod:      loadEnvString("OAUTH_HTTP_METHOD", "POST"),
		NonceMode:       loadEnvString("OAUTH_NONCE_MODE", "derived"),
		Realm:           loadEnvString("OAUTH_REALM", ""),
		InputQueue:      loadEnvString("INPUT_QUEUE", ""),
		OutputQueue:     loadEnvString("OUTPUT_QUEUE", ""),
		AWSRegion:       loadEnvString("AWS_REGION", "us-east-1"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvString returns the named variable or the fallback when it is unset
// or empty.
func loadEnvString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// Validate collects every violation instead of stopping at the first, so a
// misconfigured deploy reports all of its problems at once.
func (c *Config) Validate() error {
	var problems []string
	if c.ConsumerKey == "" {
		problems = append(problems, "OAUTH_CONSUMER_KEY is required")
	}
	if c.ConsumerSecret == "" {
		problems = append(problems, "OAUTH_CONSUMER_SECRET is required")
	}
	if c.InputQueue == "" {
		problems = append(problems, "INPUT_QUEUE is required")
	}
	if c.OutputQueue == "" {
		problems = append(problems, "OUTPUT_QUEUE is required")
	}
	if _, err := auth.ParseSignatureMethod(c.SignatureMethod); err != nil {
		problems = append(problems, fmt.Sprintf("OAUTH_SIGNATURE_METHOD: %v", err))
	}
	if _, err := auth.ParseHTTPMethod(c.HTTPMethod); err != nil {
		problems = append(problems, fmt.Sprintf("OAUTH_HTTP_METHOD: %v", err))
	}
	if _, err := auth.ParseNoncer(c.NonceMode); err != nil {
		problems = append(problems, fmt.Sprintf("OAUTH_NONCE_MODE: %v", err))
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}
