package cmd

import (
	"github.com/emrgen/resourcesync/internal/config"
	"github.com/emrgen/resourcesync/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.GetDb(cnf)
			if err != nil {
				return err
			}

			if err := store.NewGormStore(db).Migrate(); err != nil {
				return err
			}

			logrus.Infof("migrated %s database", cnf.Database.Driver)
			return nil
		},
	}

	return command
}
