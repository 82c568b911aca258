package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keybuf/internal/crypto"
	"keybuf/internal/protocol/agree"
)

// agree <peer>: derive the key shared with a keyring peer.
func agreeCmd() *cobra.Command {
	var info string
	var reveal bool
	cmd := &cobra.Command{
		Use:   "agree <peer>",
		Short: "Derive a symmetric key shared with a keyring peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			peer, err := appCtx.Peers.Lookup(args[0])
			if err != nil {
				return err
			}
			id, err := appCtx.IDs.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			defer crypto.WipeIdentity(&id)

			key, err := agree.DeriveKey(id.SecKey, peer.Key, []byte(info))
			if err != nil {
				return err
			}
			defer crypto.Wipe(key.Bytes())

			fmt.Printf("Peer:        %s\n", peer.Label)
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(key.Slice()))
			if reveal {
				fmt.Printf("Key:         %s\n", hex.EncodeToString(key.Slice()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&info, "info", "", "purpose string; different values derive independent keys")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print the key itself")
	return cmd
}
