package main

import (
	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search indexes from the database and exit",
	Long: `Reindex empties the profil and skill search indexes and refills them
with the records currently stored in PostgreSQL. Use it after restoring a
database or when the indexes drifted from the stored records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return a.reindex(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
