package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rhcrypto/internal/crypto"
	"rhcrypto/internal/domain"
)

func saveCredentialsCmd() *cobra.Command {
	var apiKey, privateKeyB64 string

	cmd := &cobra.Command{
		Use:   "save-credentials",
		Short: "Store API credentials encrypted under the config dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			priv, err := crypto.SeedFromBase64(privateKeyB64)
			if err != nil {
				return err
			}
			creds := domain.Credentials{APIKey: apiKey, PrivateKey: priv}
			if err := appCtx.Keys.Save(passphrase, creds); err != nil {
				return err
			}
			fmt.Println("Credentials saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key issued by the credential portal")
	cmd.Flags().StringVar(&privateKeyB64, "private-key", "", "base64 Ed25519 private key seed")
	cmd.MarkFlagRequired("api-key")
	cmd.MarkFlagRequired("private-key")
	return cmd
}
