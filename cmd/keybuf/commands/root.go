package commands

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keybuf/internal/app"
)

var (
	home       string
	configPath string
	backend    string
	passphrase string
	verbose    bool
	appCtx     *app.Wire
)

// Execute runs the keybuf root command.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keybuf",
		Short: "Fixed-size key material toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(0)
			log.SetPrefix("keybuf: ")
			log.SetOutput(io.Discard)
			if verbose {
				log.SetOutput(os.Stderr)
			}

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keybuf")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if configPath == "" {
				configPath = filepath.Join(home, app.ConfigFilename)
			}

			cfg, err := app.LoadConfig(configPath, home)
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.KeyringBackend = backend
			}
			log.Printf("home %s, keyring backend %s", cfg.Home, cfg.KeyringBackend)

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.keybuf)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "keyring backend: file or pebble (overrides config)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		showCmd(),
		signCmd(),
		verifyCmd(),
		keyringCmd(),
		decodeCmd(),
		agreeCmd(),
	)
	return root
}

func requirePassphrase() error {
	if passphrase == "" {
		return errPassphraseRequired
	}
	return nil
}
