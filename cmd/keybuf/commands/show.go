package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the public half of the identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			pub, err := appCtx.IDs.PublicIdentity(passphrase)
			if err != nil {
				return err
			}
			if format != "text" {
				return writeStructured(os.Stdout, pub, format)
			}
			fmt.Printf("X25519:     %s\n", pub.XPub)
			fmt.Printf("Ed25519:    %s\n", pub.EdPub)
			fmt.Printf("secp256k1:  %s\n", pub.SecPub)
			fmt.Printf("Dilithium3: %s\n", pub.PQID)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, yaml or json")
	return cmd
}
