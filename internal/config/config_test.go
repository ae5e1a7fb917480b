package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `{
	"shipstation": {
		"api_key": "ss_key",
		"api_secret": "ss_secret",
		"WCstoreID": 42
	},
	"woocommerce": {
		"store_url": "https://shop.example.com",
		"consumer_key": "ck_test",
		"consumer_secret": "cs_test"
	},
	"SS_Submit_Orders": true,
	"SS_Debug": false,
	"WC_Debug": true
}`

// loadFromTempFile writes content to a temp config file and loads it
// via the CONFIG_FILE path.
func loadFromTempFile(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GCP_PROJECT", "")
	return Load(context.Background())
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := loadFromTempFile(t, validConfig)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ShipStation.APIKey != "ss_key" || cfg.ShipStation.APISecret != "ss_secret" {
		t.Errorf("shipstation credentials = %+v", cfg.ShipStation)
	}
	if cfg.ShipStation.StoreID != 42 {
		t.Errorf("StoreID = %d, want 42", cfg.ShipStation.StoreID)
	}
	if cfg.WooCommerce.StoreURL != "https://shop.example.com" {
		t.Errorf("StoreURL = %q", cfg.WooCommerce.StoreURL)
	}
	if !cfg.SubmitOrders {
		t.Error("SubmitOrders = false, want true")
	}
	if cfg.ShipStationDebug || !cfg.WooCommerceDebug {
		t.Errorf("debug toggles = (%v, %v), want (false, true)", cfg.ShipStationDebug, cfg.WooCommerceDebug)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.json"))
	t.Setenv("GCP_PROJECT", "")

	_, err := Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := loadFromTempFile(t, `{"shipstation": {`)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
	// The parse diagnostic must be included for the operator.
	if !strings.Contains(err.Error(), "unexpected end of JSON input") {
		t.Errorf("error %q should carry the JSON parse diagnostic", err)
	}
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name    string
		section string
		key     string
		wantKey string
	}{
		{"no shipstation key", "shipstation", "api_key", "shipstation.api_key"},
		{"no shipstation secret", "shipstation", "api_secret", "shipstation.api_secret"},
		{"no store url", "woocommerce", "store_url", "woocommerce.store_url"},
		{"no consumer key", "woocommerce", "consumer_key", "woocommerce.consumer_key"},
		{"no consumer secret", "woocommerce", "consumer_secret", "woocommerce.consumer_secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			if err := json.Unmarshal([]byte(validConfig), &doc); err != nil {
				t.Fatalf("parsing fixture: %v", err)
			}
			delete(doc[tt.section].(map[string]any), tt.key)
			content, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("rebuilding fixture: %v", err)
			}

			_, err = loadFromTempFile(t, string(content))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error %q should name the missing key %s", err, tt.wantKey)
			}
		})
	}
}

func TestLoadOptionalStoreID(t *testing.T) {
	content := strings.Replace(validConfig, `"WCstoreID": 42`, `"WCstoreID": 0`, 1)
	cfg, err := loadFromTempFile(t, content)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ShipStation.StoreID != 0 {
		t.Errorf("StoreID = %d, want 0 (resolve from store list)", cfg.ShipStation.StoreID)
	}
}
