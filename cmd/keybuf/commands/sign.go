package commands

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"keybuf/internal/crypto"
	"keybuf/internal/domain"
)

// Signature schemes accepted by sign and verify.
const (
	schemeSecp256k1   = "secp256k1"
	schemeRecoverable = "recoverable"
	schemeEd25519     = "ed25519"
	schemeDilithium3  = "dilithium3"
)

// sign <message>: sign message with one of the identity keys.
func signCmd() *cobra.Command {
	var scheme string
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message and print the signature in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			id, err := appCtx.IDs.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			defer crypto.WipeIdentity(&id)

			sig, err := signMessage(id, scheme, []byte(args[0]))
			if err != nil {
				return err
			}
			log.Printf("%s signature, %d bytes", scheme, len(sig))
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", schemeSecp256k1,
		"signature scheme: secp256k1, recoverable, ed25519 or dilithium3")
	return cmd
}

func signMessage(id domain.Identity, scheme string, msg []byte) ([]byte, error) {
	switch scheme {
	case schemeSecp256k1:
		sig, err := crypto.SignSecp256k1(id.SecKey, crypto.HashMessage(msg))
		if err != nil {
			return nil, err
		}
		return sig.Slice(), nil
	case schemeRecoverable:
		sig, err := crypto.SignRecoverable(id.SecKey, crypto.HashMessage(msg))
		if err != nil {
			return nil, err
		}
		return sig.Slice(), nil
	case schemeEd25519:
		return crypto.SignEd25519(id.EdPriv, msg).Slice(), nil
	case schemeDilithium3:
		return crypto.SignDilithium3(id.PQSeed, msg).Slice(), nil
	default:
		return nil, fmt.Errorf("unknown scheme %q", scheme)
	}
}
