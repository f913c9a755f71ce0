package cmd

import (
	"fmt"
	"strings"

	intconfig "globetrotter/internal/config"
	intdb "globetrotter/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables that do not exist yet",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	env := loadEnv()

	db, err := intconfig.ConnectDB(cmd.Context(), env)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	created, err := intdb.Migrate(cmd.Context(), db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if len(created) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created tables: %s\n", strings.Join(created, ", "))
	return nil
}
