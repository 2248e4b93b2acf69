package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
	"github.com/voicerelay/client-go/keystore"
)

var (
	relayURL   string
	token      string
	passphrase string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "voicerelay",
		Short:        "Seal, open, and relay encrypted envelopes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; flags and real env still apply.
			_ = godotenv.Load()
			if relayURL == "" {
				relayURL = os.Getenv("VOICERELAY_URL")
			}
			if token == "" {
				token = os.Getenv("VOICERELAY_TOKEN")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&relayURL, "relay", "", "relay base URL (default $VOICERELAY_URL)")
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token, github|<user>|<token> (default $VOICERELAY_TOKEN)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the key file")

	root.AddCommand(keygenCmd(), sealCmd(), openCmd(), registerCmd(), sendCmd(), fetchCmd())
	return root.Execute()
}

// relayClient builds a client from the --relay/--token flags and their
// environment fallbacks.
func relayClient() (*voicerelay.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("token required (--token or VOICERELAY_TOKEN)")
	}
	var opts []voicerelay.Option
	if relayURL != "" {
		opts = append(opts, voicerelay.WithBaseURL(relayURL))
	}
	return voicerelay.New(token, opts...)
}

// loadKeyPair reads a private key file, using the passphrase when the file
// is protected.
func loadKeyPair(path string) (*voicerelay.KeyPair, error) {
	if passphrase != "" {
		return keystore.LoadProtected(path, []byte(passphrase))
	}
	key, err := keystore.Load(path)
	if errors.Is(err, keystore.ErrPassphraseRequired) {
		return nil, fmt.Errorf("%s is passphrase protected (-p)", path)
	}
	return key, err
}
