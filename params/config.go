package params

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/ethereum/go-ethereum/common"

	"github.com/grailsmarket/ens-referrals/circuitbreaker"
	"github.com/grailsmarket/ens-referrals/contracts/registrar"
)

const (
	// VariantPassthrough forwards the referrer to a referral-aware controller.
	VariantPassthrough = "passthrough"
	// VariantInference renews through the plain controller and emits its own
	// referral event per renewal.
	VariantInference = "inference"

	MainnetChainID = 1
	SepoliaChainID = 11155111

	// ConfigFileName is the name of the config file stored in DataDir.
	ConfigFileName = "config.json"
)

// ----------
// ProviderConfig
// ----------

// ProviderConfig describes one JSON-RPC endpoint of the configured chain.
type ProviderConfig struct {
	// Name identifies the provider in logs and circuit names. It must not contain the / character.
	Name string `validate:"required,excludes=/"`

	URL string `validate:"required,url"`

	// Priority orders providers, lowest first.
	Priority int
}

// ----------
// LogConfig
// ----------

type LogConfig struct {
	// Level defines minimum log level. Valid names are "ERROR", "WARN", "INFO" and "DEBUG".
	Level string `validate:"eq=ERROR|eq=WARN|eq=INFO|eq=DEBUG"`

	// File is the filename logs get written to. Logs go to stderr when empty.
	File string

	// MaxSize is the maximum size in megabytes of a log file before it gets rotated.
	MaxSize int `validate:"gte=0"`

	// MaxBackups is the maximum number of rotated log files to retain.
	MaxBackups int `validate:"gte=0"`

	// CompressRotated compresses rotated log files.
	CompressRotated bool
}

// ----------
// Config
// ----------

// Config stores configuration options of the renewal tooling.
type Config struct {
	// ChainID selects the chain quotes are read from and the known controller address.
	ChainID uint64 `json:"ChainId" validate:"required"`

	// Providers is the ordered list of JSON-RPC endpoints for ChainID.
	Providers []ProviderConfig `validate:"dive"`

	// ControllerAddress overrides the ETHRegistrarController address known for ChainID.
	ControllerAddress string `validate:"omitempty,eth_addr"`

	// ReferralControllerAddress is the referral-aware controller used by the
	// pass-through variant.
	ReferralControllerAddress string `validate:"omitempty,eth_addr"`

	// Referrer is attached to every renewal. It is either 0x-prefixed hex of
	// at most 32 bytes or a plain string of at most 32 bytes.
	Referrer string `validate:"max=66"`

	// Variant selects how referrals are recorded.
	Variant string `validate:"eq=passthrough|eq=inference"`

	// DataDir is where receipts are stored. Receipts are not persisted when empty.
	DataDir string

	// DatabasePassword encrypts the receipts database.
	DatabasePassword string `json:"-"`

	// MetricsAddress is the host:port of the Prometheus endpoint. Disabled when empty.
	MetricsAddress string

	LogConfig LogConfig `json:"LogConfig"`

	CircuitBreaker circuitbreaker.Config `json:"CircuitBreaker"`
}

// NewConfig returns a config with defaults.
// Important: the returned config is not validated.
func NewConfig() *Config {
	return &Config{
		ChainID: MainnetChainID,
		Variant: VariantInference,
		LogConfig: LogConfig{
			Level:      "INFO",
			MaxSize:    100,
			MaxBackups: 3,
		},
		CircuitBreaker: circuitbreaker.Config{
			Timeout:                10000,
			MaxConcurrentRequests:  100,
			RequestVolumeThreshold: 20,
			SleepWindow:            300000,
			ErrorPercentThreshold:  25,
		},
	}
}

// NewConfigFromJSON parses incoming JSON on top of the defaults and validates the result.
func NewConfigFromJSON(configJSON string) (*Config, error) {
	config := NewConfig()
	if err := loadConfigFromJSON(configJSON, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromFile reads a JSON config file on top of the defaults and validates the result.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return NewConfigFromJSON(string(data))
}

func loadConfigFromJSON(configJSON string, config *Config) error {
	decoder := json.NewDecoder(strings.NewReader(configJSON))
	decoder.DisallowUnknownFields()
	// override default configuration with values by JSON input
	if err := decoder.Decode(config); err != nil {
		return errors.Wrap(err, "decode config")
	}
	return nil
}

// Validate checks if Config fields have valid values.
//
// A single error for a struct has the following format:
//
//	Key: 'Config.Variant' Error:Field validation for 'Variant' failed on the 'eq=passthrough|eq=inference' tag
func (c *Config) Validate() error {
	validate := NewValidator()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, err := c.ReferrerID(); err != nil {
		return err
	}

	if c.Variant == VariantPassthrough && c.ReferralControllerAddress == "" {
		return fmt.Errorf("Variant is %s, but ReferralControllerAddress is empty", VariantPassthrough)
	}

	if c.MetricsAddress != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddress); err != nil {
			return fmt.Errorf("MetricsAddress '%s' is invalid: %v", c.MetricsAddress, err)
		}
	}

	seen := make(map[string]bool, len(c.Providers))
	for _, p := range c.Providers {
		if seen[p.Name] {
			return fmt.Errorf("provider name '%s' is used more than once", p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

// NewValidator returns a validator configured for Config structs.
func NewValidator() *validator.Validate {
	return validator.New()
}

// ReferrerID returns the referrer as the 32 byte identifier passed to contracts.
// Hex input is left-padded like an address; text input is right-padded like a
// Solidity bytes32 string literal.
func (c *Config) ReferrerID() ([32]byte, error) {
	var id [32]byte
	if c.Referrer == "" {
		return id, nil
	}
	if strings.HasPrefix(c.Referrer, "0x") || strings.HasPrefix(c.Referrer, "0X") {
		raw := c.Referrer[2:]
		if len(raw)%2 == 1 {
			raw = "0" + raw
		}
		b, err := hex.DecodeString(raw)
		if err != nil {
			return id, fmt.Errorf("Referrer '%s' is invalid: %v", c.Referrer, err)
		}
		if len(b) > len(id) {
			return id, fmt.Errorf("Referrer '%s' is longer than 32 bytes", c.Referrer)
		}
		copy(id[len(id)-len(b):], b)
		return id, nil
	}
	if len(c.Referrer) > len(id) {
		return id, fmt.Errorf("Referrer '%s' is longer than 32 bytes", c.Referrer)
	}
	copy(id[:], c.Referrer)
	return id, nil
}

// Controller returns the configured ETHRegistrarController address, or the one
// known for ChainID.
func (c *Config) Controller() (common.Address, error) {
	if c.ControllerAddress != "" {
		return common.HexToAddress(c.ControllerAddress), nil
	}
	addr, err := registrar.ControllerAddress(c.ChainID)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "controller address for chain %d", c.ChainID)
	}
	return addr, nil
}

// ReferralController returns the configured referral-aware controller address.
func (c *Config) ReferralController() common.Address {
	return common.HexToAddress(c.ReferralControllerAddress)
}

// Save dumps configuration to the disk
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.DataDir, 0700); err != nil {
		return err
	}

	configFilePath := filepath.Join(c.DataDir, ConfigFileName)
	return os.WriteFile(configFilePath, data, 0600)
}

// String dumps config object as nicely indented JSON
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "    ")
	return string(data)
}
