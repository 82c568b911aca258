package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"keybuf/internal/crypto"
	"keybuf/internal/domain"
	domaintypes "keybuf/internal/domain/types"
)

var errBadSignature = errors.New("signature does not verify")

// verify <message> <signature>: check a hex signature.
//
// secp256k1 signatures are checked against a keyring entry (--peer) or the
// local identity.  Recoverable signatures print the recovered key.  The
// other schemes are checked against the local identity.
func verifyCmd() *cobra.Command {
	var scheme, peer string
	cmd := &cobra.Command{
		Use:   "verify <message> <signature-hex>",
		Short: "Verify a signature over a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := []byte(args[0])
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}

			if scheme == schemeRecoverable {
				return verifyRecoverable(msg, raw)
			}

			if scheme == schemeSecp256k1 && peer != "" {
				e, err := appCtx.Peers.Lookup(peer)
				if err != nil {
					return err
				}
				return verifySecp256k1(e.Key, msg, raw)
			}

			if err := requirePassphrase(); err != nil {
				return err
			}
			pub, err := loadPublic()
			if err != nil {
				return err
			}

			switch scheme {
			case schemeSecp256k1:
				return verifySecp256k1(pub.SecPub, msg, raw)
			case schemeEd25519:
				sig, err := domaintypes.Ed25519SignatureFromSlice(raw)
				if err != nil {
					return err
				}
				return report(crypto.VerifyEd25519(pub.EdPub, msg, sig))
			case schemeDilithium3:
				sig, err := domaintypes.Dilithium3SignatureFromSlice(raw)
				if err != nil {
					return err
				}
				return report(crypto.VerifyDilithium3(pub.PQPub, msg, sig))
			default:
				return fmt.Errorf("unknown scheme %q", scheme)
			}
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", schemeSecp256k1,
		"signature scheme: secp256k1, recoverable, ed25519 or dilithium3")
	cmd.Flags().StringVar(&peer, "peer", "", "keyring entry to verify secp256k1 signatures against")
	return cmd
}

// identityPublics is the public key material verify needs from the local
// identity.
type identityPublics struct {
	SecPub domain.PublicKey
	EdPub  domain.Ed25519Public
	PQPub  domain.Dilithium3Public
}

func loadPublic() (identityPublics, error) {
	id, err := appCtx.IDs.LoadIdentity(passphrase)
	if err != nil {
		return identityPublics{}, err
	}
	defer crypto.WipeIdentity(&id)
	return identityPublics{SecPub: id.SecPub, EdPub: id.EdPub, PQPub: id.PQPub}, nil
}

func verifySecp256k1(pk domain.PublicKey, msg, raw []byte) error {
	sig, err := domaintypes.SignatureFromSlice(raw)
	if err != nil {
		return err
	}
	log.Printf("verifying against %s", pk)
	return report(crypto.VerifySecp256k1(pk, crypto.HashMessage(msg), sig))
}

func verifyRecoverable(msg, raw []byte) error {
	sig, err := domaintypes.RecoverableSignatureFromSlice(raw)
	if err != nil {
		return err
	}
	pk, err := crypto.RecoverPublicKey(sig, crypto.HashMessage(msg))
	if err != nil {
		return errors.Join(errBadSignature, err)
	}
	fmt.Printf("Signed by: %x\n", pk.Slice())
	if e, err := appCtx.Peers.Lookup(hex.EncodeToString(pk.Slice())); err == nil {
		fmt.Printf("Keyring:   %s (%s)\n", e.Label, e.ID)
	}
	return nil
}

func report(ok bool) error {
	if !ok {
		return errBadSignature
	}
	fmt.Println("OK")
	return nil
}
