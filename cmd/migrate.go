package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the forum tables and run database migrations",
	Long:  `This job runs the embedded goose migrations against the configured database.`,
	Run: func(cmd *cobra.Command, args []string) {

		commonSetUp()
		defer forumDB.Close()

		log.Info().Msgf("Running migrations...")
		if err := forumDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		log.Info().Msg("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
