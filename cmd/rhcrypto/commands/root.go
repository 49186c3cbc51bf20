package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rhcrypto/internal/app"
)

var (
	home       string
	passphrase string
	baseURL    string
	envFile    string
	timeout    time.Duration
	verbose    bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "rhcrypto",
		Short:         "Signed CLI for the Robinhood Crypto trading API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".rhcrypto")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			logger := logrus.StandardLogger()
			logger.SetLevel(logrus.WarnLevel)
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			appCtx = app.New(app.Config{
				Home:       home,
				EnvFile:    envFile,
				BaseURL:    baseURL,
				Timeout:    timeout,
				Passphrase: passphrase,
			}, logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.rhcrypto)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for saved credentials")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "trading API base URL (default production)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", ".env file to load credentials from (default ./.env)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default 10s)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		generateKeysCmd(),
		saveCredentialsCmd(),
		testConnectionCmd(),
		viewHoldingsCmd(),
		bestBidAskCmd(),
		estimatedPriceCmd(),
		tradingPairsCmd(),
		ordersCmd(),
		orderCmd(),
		placeOrderCmd(),
		cancelOrderCmd(),
	)
	return root.Execute()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
