// Command hdkeytool is a small CLI over package hdkey, in the spirit of
// kubetrail-bip32's cobra+viper command tree: each subcommand exercises one
// construction or derivation path (mnemonic, seed, extended key) and prints
// the result as text or JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ModChain/hdkey/internal/config"
	"github.com/ModChain/hdkey/internal/obslog"
)

var (
	cfgFile string
	cfg     *config.Config
	// logger defaults to the environment-derived configuration so it is
	// never nil even if a command's RunE runs before PersistentPreRun
	// finishes binding viper; PersistentPreRun below replaces it once
	// --config/flags are resolved.
	logger = obslog.NewFromEnv("hdkeytool")
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hdkeytool",
		Short: "Derive and inspect BIP-32/BIP-44/SLIP-10 hierarchical deterministic keys",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitViper(cfgFile)
			cfg = config.Load()
			logger = obslog.New("hdkeytool", cfg.LogLevel, cfg.LogFormat)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml/json/toml)")
	config.BindPersistentFlags(root)

	root.AddCommand(newMasterCmd())
	root.AddCommand(newDeriveCmd())
	root.AddCommand(newAddressCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
