package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = "5003"

// Payment providers accepted by PAYMENT_PROVIDER.
const (
	ProviderStripe = "stripe"
	ProviderOmise  = "omise"
)

type Config struct {
	Port            string
	MongoURI        string
	TokenSecret     string
	PaymentProvider string
	StripeSecretKey string
	OmisePublicKey  string
	OmiseSecretKey  string
	GCSBucket       string
	GCSCredentials  string
	CORSOrigins     []string
	AppEnv          string
}

// Load reads .env (if any) and the process environment. Every missing required
// key is reported in the returned error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT"),
		MongoURI:        getenv("MONGODB_URI"),
		TokenSecret:     getenv("ACCESS_TOKEN_SECRET"),
		PaymentProvider: strings.ToLower(getenv("PAYMENT_PROVIDER")),
		StripeSecretKey: getenv("STRIPE_SECRET_KEY"),
		OmisePublicKey:  getenv("OMISE_PUBLIC_KEY"),
		OmiseSecretKey:  getenv("OMISE_SECRET_KEY"),
		GCSBucket:       getenv("GCS_BUCKET"),
		GCSCredentials:  getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS")),
		AppEnv:          getenv("APP_ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.PaymentProvider == "" {
		cfg.PaymentProvider = ProviderStripe
	}

	var missing []string
	if cfg.MongoURI == "" {
		user, pass, host := getenv("DB_USER"), getenv("DB_PASS"), getenv("DB_HOST")
		for key, v := range map[string]string{"DB_USER": user, "DB_PASS": pass, "DB_HOST": host} {
			if v == "" {
				missing = append(missing, key)
			}
		}
		if user != "" && pass != "" && host != "" {
			cfg.MongoURI = atlasURI(user, pass, host)
		}
	}
	if cfg.TokenSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}

	switch cfg.PaymentProvider {
	case ProviderStripe:
		if cfg.StripeSecretKey == "" {
			missing = append(missing, "STRIPE_SECRET_KEY")
		}
	case ProviderOmise:
		if cfg.OmisePublicKey == "" {
			missing = append(missing, "OMISE_PUBLIC_KEY")
		}
		if cfg.OmiseSecretKey == "" {
			missing = append(missing, "OMISE_SECRET_KEY")
		}
	default:
		return nil, fmt.Errorf("config: unknown PAYMENT_PROVIDER %q", cfg.PaymentProvider)
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func atlasURI(user, pass, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=PharmaPlace",
	}
	return u.String()
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
