package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
)

func openCmd() *cobra.Command {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "open [envelope]",
		Short: "Open base64 envelope text and print the plaintext",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelopeText, err := argOrStdin(args)
			if err != nil {
				return err
			}
			envelopeText = strings.TrimSpace(envelopeText)

			key, err := loadKeyPair(keyPath)
			if err != nil {
				return err
			}

			plaintext, err := voicerelay.Open(envelopeText, key)
			if err != nil {
				if voicerelay.IsCannotDecrypt(err) {
					return fmt.Errorf("cannot decrypt envelope")
				}
				return err
			}
			fmt.Println(plaintext)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "voicerelay_key.pem", "private key file")
	return cmd
}
