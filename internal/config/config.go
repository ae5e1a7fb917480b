// Package config handles loading and validation of the sync
// configuration. Supports both development (local JSON file) and
// production (Secret Manager) modes.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Sentinel errors distinguishing the two fatal startup failures.
// main maps them to distinct process exit codes.
var (
	// ErrNotFound: the configuration document does not exist.
	ErrNotFound = errors.New("configuration not found")
	// ErrMalformed: the document exists but cannot be used, either bad
	// JSON or a missing required key. No partial/defaulted config is
	// accepted.
	ErrMalformed = errors.New("configuration malformed")
)

// defaultConfigFile is read when CONFIG_FILE is unset, matching where
// the tool has always expected its settings.
const defaultConfigFile = "config.json"

// Config holds all sync configuration. The JSON layout is the external
// contract of the config.json document, top-level toggles included.
type Config struct {
	ShipStation ShipStationConfig `json:"shipstation"`
	WooCommerce WooCommerceConfig `json:"woocommerce"`

	// SubmitOrders gates the outbound submission call; off means the
	// run maps everything but sends nothing.
	SubmitOrders bool `json:"SS_Submit_Orders"`

	// Independent debug toggles for the two API adapters.
	ShipStationDebug bool `json:"SS_Debug"`
	WooCommerceDebug bool `json:"WC_Debug"`
}

// ShipStationConfig contains the destination credentials and the
// optional explicit destination store.
type ShipStationConfig struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`

	// StoreID is optional; zero means "resolve from the store list".
	StoreID int `json:"WCstoreID"`
}

// WooCommerceConfig contains the source store credentials.
type WooCommerceConfig struct {
	StoreURL       string `json:"store_url"`
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

// Load reads configuration from a file or Secret Manager.
// With GCP_PROJECT set (production), the JSON payload comes from Secret
// Manager; otherwise from CONFIG_FILE (default config.json).
func Load(ctx context.Context) (*Config, error) {
	if project := os.Getenv("GCP_PROJECT"); project != "" {
		secretID := envOrDefault("CONFIG_SECRET", "shipsync-config")
		return loadFromSecretManager(ctx, project, secretID)
	}
	return loadFromFile(envOrDefault("CONFIG_FILE", defaultConfigFile))
}

// loadFromFile reads the configuration document from a local JSON file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(data)
}

// loadFromSecretManager fetches the same JSON document from GCP Secret
// Manager. Secret name format: projects/{project}/secrets/{id}/versions/latest
func loadFromSecretManager(ctx context.Context, project, secretID string) (*Config, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating secret manager client: %w", err)
	}
	defer client.Close()

	secretName := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, secretID)

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: accessing secret %s: %v", ErrNotFound, secretName, err)
	}

	return parse(result.Payload.Data)
}

// parse decodes and validates the configuration document. A JSON error
// is reported with its diagnostic; a missing required key fails
// validation. Both wrap ErrMalformed.
func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks that all required configuration keys are present.
// A missing key is a contract violation, never silently defaulted.
func (c *Config) validate() error {
	if c.ShipStation.APIKey == "" {
		return fmt.Errorf("%w: shipstation.api_key is required", ErrMalformed)
	}
	if c.ShipStation.APISecret == "" {
		return fmt.Errorf("%w: shipstation.api_secret is required", ErrMalformed)
	}
	if c.WooCommerce.StoreURL == "" {
		return fmt.Errorf("%w: woocommerce.store_url is required", ErrMalformed)
	}
	if c.WooCommerce.ConsumerKey == "" {
		return fmt.Errorf("%w: woocommerce.consumer_key is required", ErrMalformed)
	}
	if c.WooCommerce.ConsumerSecret == "" {
		return fmt.Errorf("%w: woocommerce.consumer_secret is required", ErrMalformed)
	}

	if _, err := url.Parse(c.WooCommerce.StoreURL); err != nil {
		return fmt.Errorf("%w: invalid woocommerce.store_url: %v", ErrMalformed, err)
	}
	return nil
}

// envOrDefault returns the environment variable value or the default if not set.
func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
