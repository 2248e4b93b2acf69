package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Publish your public key to the relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKeyPair(keyPath)
			if err != nil {
				return err
			}

			client, err := relayClient()
			if err != nil {
				return err
			}
			if err := client.RegisterKeyPair(cmd.Context(), key); err != nil {
				return err
			}

			fmt.Printf("Registered key %s\n", key.Public().Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "voicerelay_key.pem", "private key file")
	return cmd
}
