package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ModChain/hdkey/internal/obslog"
	"github.com/ModChain/hdkey/slip10"
)

func newAddressCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the Ethereum address for a secp256k1 extended key",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := logger.WithOperation("address")

			c, err := resolveCurve()
			if err != nil {
				return err
			}
			spec, err := resolveSpecification()
			if err != nil {
				return err
			}
			entry = obslog.WithCurve(entry, string(c.Name()), string(spec))

			node, err := slip10.FromExtendedKeyString(from, c, spec)
			if err != nil {
				entry.WithError(err).Error("failed to reconstruct node from extended key")
				return err
			}

			addr, err := node.EthereumAddress()
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "extended key (xprv/xpub) to read")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
