package main

import (
	"os"

	"rhcrypto/cmd/rhcrypto/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
