package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/orderdesk/database/seeders"
	"github.com/shashiranjanraj/orderdesk/internal/server"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"

	_ "github.com/shashiranjanraj/orderdesk/database/migrations"
)

func main() {
	root := &cobra.Command{
		Use:   "orderdesk",
		Short: "Order management backoffice",
	}

	root.AddCommand(
		serveCmd(),
		routeListCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			return app.Serve()
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			defer app.Close()

			for _, r := range app.Router.Routes() {
				fmt.Printf("%-6s %-35s %s\n", r.Method, r.Path, r.Name)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			defer app.Close()
			return migration.New(app.DB).Run()
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			defer app.Close()
			return migration.New(app.DB).Rollback()
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show which migrations have run",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			defer app.Close()
			return migration.New(app.DB).Status()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed role groups, the admin user and the demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Boot()
			if err != nil {
				return err
			}
			defer app.Close()
			return seeders.Run(app.DB)
		},
	}
}
