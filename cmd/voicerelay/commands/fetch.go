package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
)

func fetchCmd() *cobra.Command {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch pending envelopes from the relay and open them",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKeyPair(keyPath)
			if err != nil {
				return err
			}

			client, err := relayClient()
			if err != nil {
				return err
			}

			messages, err := client.FetchMessages(cmd.Context())
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println("No pending messages.")
				return nil
			}

			for _, msg := range messages {
				fmt.Printf("--- %s (%s)\n", msg.ID, msg.CreatedAt.Format("2006-01-02 15:04:05"))
				plaintext, err := msg.Open(key)
				if err != nil {
					if voicerelay.IsCannotDecrypt(err) {
						fmt.Println("cannot decrypt envelope")
						continue
					}
					return err
				}
				fmt.Println(plaintext)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "voicerelay_key.pem", "private key file")
	return cmd
}
