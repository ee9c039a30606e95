package main

import (
	"github.com/spf13/cobra"

	"github.com/ModChain/hdkey/internal/obslog"
	"github.com/ModChain/hdkey/path"
	"github.com/ModChain/hdkey/slip10"
)

func newDeriveCmd() *cobra.Command {
	var from, pathStr string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a child node from an extended key, following a bip32: token path",
		Long: "Derive a child node from an extended key, following a path of " +
			"bip32:<index>[']  tokens joined by '/', e.g. \"bip32:44'/bip32:60'/bip32:0'/bip32:0/bip32:0\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := logger.WithOperation("derive")

			c, err := resolveCurve()
			if err != nil {
				return err
			}
			spec, err := resolveSpecification()
			if err != nil {
				return err
			}
			entry = obslog.WithCurve(entry, string(c.Name()), string(spec))

			root, err := slip10.FromExtendedKeyString(from, c, spec)
			if err != nil {
				entry.WithError(err).Error("failed to reconstruct root from extended key")
				return err
			}

			p, err := path.Parse(pathStr)
			if err != nil {
				return err
			}
			entry.WithField("path", p.String()).Debug("deriving")

			node, err := root.Derive(p)
			if err != nil {
				entry.WithError(err).Error("derivation failed")
				return err
			}
			return printNode(node)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "extended key (xprv/xpub) to derive from")
	cmd.Flags().StringVar(&pathStr, "path", "", "bip32: token path, e.g. bip32:44'/bip32:0'/bip32:0/bip32:0")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
