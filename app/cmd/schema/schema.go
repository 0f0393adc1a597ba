package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/schema"
	"github.com/ribgsilva/notes-api/platform/env"
	"github.com/ribgsilva/notes-api/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

var dialect string

// Command returns the schema command tree. log receives config lookups.
func Command(log func() *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
		Long:  `Schema creates or deletes the notes and users tables of the database in DATABASE_CONNECTION_URL.`,
	}
	cmd.PersistentFlags().StringVar(&dialect, "dialect", "mysql", "DDL dialect of the database")

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), log(), func(ctx context.Context, db *sql.DB) error {
				cmd.Println("creating schema")
				if err := schema.Create(ctx, db, dialect); err != nil {
					return fmt.Errorf("failed to create schema: %w", err)
				}
				cmd.Println("created schema")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), log(), func(ctx context.Context, db *sql.DB) error {
				cmd.Println("deleting schema")
				if err := schema.Drop(ctx, db); err != nil {
					return fmt.Errorf("failed to delete schema: %w", err)
				}
				cmd.Println("deleted schema")
				return nil
			})
		},
	})

	return cmd
}

func withDatabase(ctx context.Context, log *zap.SugaredLogger, f func(ctx context.Context, db *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := initVars(log); err != nil {
		return err
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	opCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer cancel()
	return f(opCtx, sys.R.Database)
}

func initVars(log *zap.SugaredLogger) error {
	env.Load(log)
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notes?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
