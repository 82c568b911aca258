package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"keybuf/internal/buffer"
	"keybuf/internal/domain"
	domaintypes "keybuf/internal/domain/types"
)

func keyringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyring",
		Short: "Manage peer secp256k1 public keys",
	}
	cmd.AddCommand(keyringAddCmd(), keyringListCmd(), keyringRmCmd())
	return cmd
}

// keyring add <label> <pubkey-hex>
func keyringAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <label> <pubkey-hex>",
		Short: "Add or relabel a compressed public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			key, err := domaintypes.PublicKeyFromSlice(raw)
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			e, err := appCtx.Peers.Add(args[0], key)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\nID:     %s\nKey ID: %s\n", e.Label, e.ID, e.KeyID)
			return nil
		},
	}
}

func keyringListCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keyring entries in key order",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Peers.List()
			if err != nil {
				return err
			}
			if format != "text" {
				return writeStructured(os.Stdout, entries, format)
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tKEY\tID\tADDED")
			for _, row := range buffer.Map(entries, keyringRow) {
				fmt.Fprintln(tw, row)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, yaml or json")
	return cmd
}

// keyringRow renders e as one tab-separated line of the list table.
func keyringRow(e domain.KeyringEntry) string {
	added := time.Unix(e.AddedUTC, 0).UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s\t%x\t%s\t%s", e.Label, e.Key.Slice(), e.ID, added)
}

// keyring rm <ref>
func keyringRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <ref>",
		Short: "Remove an entry by ID, key ID, label or key hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Peers.Remove(args[0]); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
}
