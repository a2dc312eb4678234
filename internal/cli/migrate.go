package cli

import (
	"github.com/lshigami/englishhub/database"
	"github.com/spf13/cobra"
)

// NewMigrateCmd applies the gorm schema without starting the server.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			return database.Migrate(db)
		},
	}
}
