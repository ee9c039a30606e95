package main

import (
	"github.com/spf13/cobra"

	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/internal/obslog"
	"github.com/ModChain/hdkey/slip10"
)

func newMasterCmd() *cobra.Command {
	var mnemonic, passphrase, seedHex string

	cmd := &cobra.Command{
		Use:   "master",
		Short: "Build a master node from a mnemonic or a raw seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := logger.WithOperation("master")

			c, err := resolveCurve()
			if err != nil {
				return err
			}
			spec, err := resolveSpecification()
			if err != nil {
				return err
			}
			entry = obslog.WithCurve(entry, string(c.Name()), string(spec))

			var node *slip10.Node
			switch {
			case mnemonic != "":
				entry.Debug("deriving master from mnemonic")
				node, err = slip10.FromMnemonic(cmd.Context(), mnemonic, passphrase, c, spec)
			case seedHex != "":
				seed, decErr := codec.DecodeHex(seedHex)
				if decErr != nil {
					return decErr
				}
				entry.Debug("deriving master from seed")
				node, err = slip10.FromSeed(seed, c, spec)
			default:
				return hderr.New(hderr.InvalidMnemonic, "one of --mnemonic or --seed-hex is required")
			}
			if err != nil {
				entry.WithError(err).Error("master derivation failed")
				return err
			}
			return printNode(node)
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic phrase")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "optional BIP-39 passphrase")
	cmd.Flags().StringVar(&seedHex, "seed-hex", "", "raw seed, as hex")

	return cmd
}
