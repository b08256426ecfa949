// Package config loads daemon configuration from YAML with environment
// overrides. Missing files fall back to defaults; a malformed candidate file
// is skipped rather than fatal.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/multiformats/go-multiaddr"
	"gopkg.in/yaml.v3"
)

// Config is the merged daemon configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	RPC     RPCConfig     `yaml:"rpc"`
	Session SessionConfig `yaml:"session"`
}

// LedgerConfig locates the ledger gateway and sets the write fee policy.
type LedgerConfig struct {
	// Gateway is the ledger gateway endpoint as a multiaddr, e.g.
	// /dns4/gateway.example.net/tcp/8545/http
	Gateway        string        `yaml:"gateway"`
	ChainID        uint64        `yaml:"chainId"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	MaxFeeGwei     uint64        `yaml:"maxFeeGwei"`
	PriorityGwei   uint64        `yaml:"priorityFeeGwei"`
}

// RPCConfig configures the JSON-RPC listener.
type RPCConfig struct {
	Addr      string  `yaml:"addr"`
	Token     string  `yaml:"token"`
	RateRPS   float64 `yaml:"rateRps"`
	RateBurst int     `yaml:"rateBurst"`
}

// SessionConfig locates the encrypted keystore.
type SessionConfig struct {
	KeystorePath string `yaml:"keystorePath"`
}

func DefaultConfig() Config {
	return Config{
		Ledger: LedgerConfig{
			Gateway:        "/ip4/127.0.0.1/tcp/8545/http",
			ChainID:        1,
			RequestTimeout: 30 * time.Second,
			MaxFeeGwei:     2,
			PriorityGwei:   1,
		},
		RPC: RPCConfig{
			Addr:      "127.0.0.1:8787",
			RateRPS:   20,
			RateBurst: 40,
		},
		Session: SessionConfig{
			KeystorePath: "keystore/session.key",
		},
	}
}

// LoadFromPath reads the first readable candidate config file, merges it over
// defaults and applies THUB_* environment overrides.
func LoadFromPath(configPath string) Config {
	cfg := DefaultConfig()

	candidates := make([]string, 0, 2)
	if configPath != "" {
		candidates = append(candidates, configPath)
	} else {
		candidates = append(candidates,
			"go-backend/configs/config.yaml",
			"configs/config.yaml",
		)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			continue
		}

		merged := cfg
		Merge(&merged, parsed)
		ApplyEnvOverrides(&merged)
		return merged
	}

	ApplyEnvOverrides(&cfg)
	return cfg
}

func Merge(dst *Config, src Config) {
	if src.Ledger.Gateway != "" {
		dst.Ledger.Gateway = src.Ledger.Gateway
	}
	if src.Ledger.ChainID != 0 {
		dst.Ledger.ChainID = src.Ledger.ChainID
	}
	if src.Ledger.RequestTimeout != 0 {
		dst.Ledger.RequestTimeout = src.Ledger.RequestTimeout
	}
	if src.Ledger.MaxFeeGwei != 0 {
		dst.Ledger.MaxFeeGwei = src.Ledger.MaxFeeGwei
	}
	if src.Ledger.PriorityGwei != 0 {
		dst.Ledger.PriorityGwei = src.Ledger.PriorityGwei
	}
	if src.RPC.Addr != "" {
		dst.RPC.Addr = src.RPC.Addr
	}
	if src.RPC.Token != "" {
		dst.RPC.Token = src.RPC.Token
	}
	if src.RPC.RateRPS != 0 {
		dst.RPC.RateRPS = src.RPC.RateRPS
	}
	if src.RPC.RateBurst != 0 {
		dst.RPC.RateBurst = src.RPC.RateBurst
	}
	if src.Session.KeystorePath != "" {
		dst.Session.KeystorePath = src.Session.KeystorePath
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if gateway := strings.TrimSpace(os.Getenv("THUB_LEDGER_GATEWAY")); gateway != "" {
		cfg.Ledger.Gateway = gateway
	}
	if raw := strings.TrimSpace(os.Getenv("THUB_LEDGER_CHAIN_ID")); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			cfg.Ledger.ChainID = v
		}
	}
	if addr := strings.TrimSpace(os.Getenv("THUB_RPC_ADDR")); addr != "" {
		cfg.RPC.Addr = addr
	}
	if token := strings.TrimSpace(os.Getenv("THUB_RPC_TOKEN")); token != "" {
		cfg.RPC.Token = token
	}
	if path := strings.TrimSpace(os.Getenv("THUB_KEYSTORE_PATH")); path != "" {
		cfg.Session.KeystorePath = path
	}
}

// GatewayURL validates the configured gateway multiaddr and converts it to
// the HTTP base URL the ledger adapter dials.
func (c LedgerConfig) GatewayURL() (string, error) {
	addr, err := multiaddr.NewMultiaddr(c.Gateway)
	if err != nil {
		return "", fmt.Errorf("ledger gateway %q: %w", c.Gateway, err)
	}

	var host, port, scheme string
	for _, proto := range addr.Protocols() {
		switch proto.Code {
		case multiaddr.P_IP4, multiaddr.P_IP6, multiaddr.P_DNS, multiaddr.P_DNS4, multiaddr.P_DNS6:
			host, _ = addr.ValueForProtocol(proto.Code)
		case multiaddr.P_TCP:
			port, _ = addr.ValueForProtocol(proto.Code)
		case multiaddr.P_HTTP:
			scheme = "http"
		case multiaddr.P_HTTPS, multiaddr.P_TLS:
			scheme = "https"
		}
	}
	if host == "" || port == "" {
		return "", fmt.Errorf("ledger gateway %q: need an ip/dns component and a tcp port", c.Gateway)
	}
	if scheme == "" {
		scheme = "http"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host + ":" + port, nil
}
