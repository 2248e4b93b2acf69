package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
	"github.com/voicerelay/client-go/keystore"
)

func keygenCmd() *cobra.Command {
	var keyPath, pubPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA keypair for receiving envelopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := voicerelay.GenerateKeyPair()
			if err != nil {
				return err
			}

			if passphrase != "" {
				err = keystore.SaveProtected(keyPath, key, []byte(passphrase))
			} else {
				err = keystore.Save(keyPath, key)
			}
			if err != nil {
				return err
			}

			pubPEM, err := key.PublicPEM()
			if err != nil {
				return err
			}
			if err := os.WriteFile(pubPath, []byte(pubPEM), 0o644); err != nil {
				return err
			}

			fmt.Printf("Private key: %s\n", keyPath)
			fmt.Printf("Public key:  %s\n", pubPath)
			fmt.Printf("Fingerprint: %s\n", key.Public().Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "out", "voicerelay_key.pem", "private key output path")
	cmd.Flags().StringVar(&pubPath, "pub", "voicerelay_key.pub.pem", "public key output path")
	return cmd
}
