package main

import (
	"encoding/json"
	"fmt"

	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/slip10"
	"github.com/ModChain/hdkey/xkey"
)

func resolveCurve() (curve.Curve, error) {
	switch cfg.Curve {
	case "secp256k1":
		return curve.Get(curve.Secp256k1)
	case "ed25519":
		return curve.Get(curve.Ed25519)
	default:
		return nil, hderr.New(hderr.InvalidSpecification, "unknown curve: "+cfg.Curve)
	}
}

func resolveSpecification() (slip10.Specification, error) {
	switch cfg.Specification {
	case "bip32":
		return slip10.BIP32, nil
	case "slip10":
		return slip10.SLIP10, nil
	default:
		return "", hderr.New(hderr.InvalidSpecification, "unknown specification: "+cfg.Specification)
	}
}

func resolveNetwork() xkey.Network {
	if cfg.Network == "testnet" {
		return xkey.Testnet
	}
	return xkey.Mainnet
}

// printNode renders a node as text (its extended-key string, for
// secp256k1) or as JSON, per --output.
func printNode(n *slip10.Node) error {
	if cfg.Output == "json" {
		rec, err := n.ToJSON(resolveNetwork())
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if n.Curve() == curve.Secp256k1 {
		ek, err := n.ExtendedKey(resolveNetwork())
		if err != nil {
			return err
		}
		s, err := ek.Encode()
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}

	pub, ok := n.PrivateKeyHex()
	if ok {
		fmt.Printf("private: %s\n", pub)
	}
	fmt.Printf("public: %s\n", n.PublicKeyHex())
	fmt.Printf("chainCode: %s\n", n.ChainCodeHex())
	return nil
}
