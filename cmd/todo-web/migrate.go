package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the lists and todos tables",
	Long:  `Create the lists and todos tables of the configured database and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, dialect, err := openDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		return migrateSchema(conn, dialect)
	},
}
