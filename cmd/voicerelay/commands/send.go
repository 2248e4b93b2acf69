package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	voicerelay "github.com/voicerelay/client-go"
)

func sendCmd() *cobra.Command {
	var topic, replyURL string

	cmd := &cobra.Command{
		Use:   "send [prompt]",
		Short: "Seal a work order for the registered recipient and submit it",
		Long: "Send fetches the recipient's registered public key from the relay, " +
			"wraps the prompt in a work order with a fresh reply key, seals it, " +
			"and submits the envelope.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := argOrStdin(args)
			if err != nil {
				return err
			}

			client, err := relayClient()
			if err != nil {
				return err
			}

			order, replyKey, err := voicerelay.NewWorkOrder(topic, prompt, replyURL)
			if err != nil {
				return err
			}

			messageID, err := client.SendWorkOrder(cmd.Context(), order)
			if err != nil {
				return err
			}

			fmt.Printf("Message ID: %s\n", messageID)
			fmt.Printf("Reply key fingerprint: %s\n", replyKey.Public().Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "general", "work order topic")
	cmd.Flags().StringVar(&replyURL, "reply-url", "", "URL the recipient POSTs the sealed reply to")
	return cmd
}
