package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foliocli",
	Short: "foliocli helps you set up a folio server",
	Long: `foliocli helps you set up a folio server.

It creates the admin password hash and the session signing secret that
the server expects in its configuration, and exports the stored content.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(hashPasswordCmd, genSecretCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
