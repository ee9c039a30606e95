// Package config holds hdkeytool's runtime configuration, bound through
// viper the way kubetrail-bip32's cobra+viper command tree binds its flags:
// every persistent flag is also a viper key, so HDKEY_-prefixed environment
// variables and a config file both work as overrides.
package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Keys are the viper keys shared by every subcommand's persistent flags.
const (
	KeyNetwork       = "network"
	KeyCurve         = "curve"
	KeySpecification = "specification"
	KeyOutput        = "output"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
)

// Config is the resolved set of flags/env/config-file values a command
// needs to run.
type Config struct {
	Network       string // "mainnet" or "testnet"
	Curve         string // "secp256k1" or "ed25519"
	Specification string // "bip32" or "slip10"
	Output        string // "text" or "json"
	LogLevel      string
	LogFormat     string
}

// BindPersistentFlags registers the shared flags on cmd and binds each to
// its viper key, so Load can resolve flag > env > config file > default.
func BindPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(KeyNetwork, "mainnet", "network for extended-key version bytes (mainnet, testnet)")
	flags.String(KeyCurve, "secp256k1", "derivation curve (secp256k1, ed25519)")
	flags.String(KeySpecification, "bip32", "derivation specification (bip32, slip10)")
	flags.String(KeyOutput, "text", "output format (text, json)")
	flags.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(KeyLogFormat, "text", "log format (text, json)")

	for _, key := range []string{KeyNetwork, KeyCurve, KeySpecification, KeyOutput, KeyLogLevel, KeyLogFormat} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// InitViper wires environment variable lookups (HDKEY_NETWORK,
// HDKEY_CURVE, ...) and an optional config file into viper.
func InitViper(configFile string) {
	viper.SetEnvPrefix("hdkey")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		_ = viper.ReadInConfig()
	}
}

// Load resolves the shared Config from viper's current state.
func Load() *Config {
	return &Config{
		Network:       viper.GetString(KeyNetwork),
		Curve:         viper.GetString(KeyCurve),
		Specification: viper.GetString(KeySpecification),
		Output:        viper.GetString(KeyOutput),
		LogLevel:      viper.GetString(KeyLogLevel),
		LogFormat:     viper.GetString(KeyLogFormat),
	}
}
