package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rhcrypto/internal/crypto"
)

func generateKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate and print an Ed25519 keypair (base64)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := crypto.GenerateKeypair()
			if err != nil {
				return err
			}

			fmt.Println("Public key (register this with the credential portal):")
			fmt.Println(kp.PublicKeyB64)
			fmt.Println()
			fmt.Println("Private key (keep secret; set as BASE64_PRIVATE_KEY):")
			fmt.Println(kp.PrivateKeyB64)
			fmt.Println()
			fmt.Println("Next: create an API credential at robinhood.com/account/crypto,")
			fmt.Println("paste the public key, then export the API_KEY you receive.")
			return nil
		},
	}
}
