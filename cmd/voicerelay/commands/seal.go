package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
)

func sealCmd() *cobra.Command {
	var pubPath string

	cmd := &cobra.Command{
		Use:   "seal [plaintext]",
		Short: "Seal plaintext for a recipient and print base64 envelope text",
		Long: "Seal encrypts its argument (or stdin when no argument is given) " +
			"for the recipient public key and prints the envelope as base64.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := argOrStdin(args)
			if err != nil {
				return err
			}

			pemText, err := os.ReadFile(pubPath)
			if err != nil {
				return err
			}
			recipient, err := voicerelay.ImportPublicKey(string(pemText))
			if err != nil {
				return err
			}

			sealed, err := voicerelay.Seal(plaintext, recipient)
			if err != nil {
				return err
			}
			fmt.Println(sealed)
			return nil
		},
	}

	cmd.Flags().StringVar(&pubPath, "key", "voicerelay_key.pub.pem", "recipient public key PEM file")
	return cmd
}

func argOrStdin(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
