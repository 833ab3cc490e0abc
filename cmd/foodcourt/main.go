// Command foodcourt is the application entry point.
//
//	foodcourt serve        start the HTTP server
//	foodcourt route:list   print the registered routes
//	foodcourt db:seed      insert the starter catalog
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/database/seeders"
	"github.com/shashiranjanraj/foodcourt/internal/server"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
)

func main() {
	root := &cobra.Command{
		Use:           "foodcourt",
		Short:         "Food ordering backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), routeListCmd(), dbSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"run"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print the registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, rt := range server.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Method, rt.Path, rt.Name)
			}
			return w.Flush()
		},
	}
}

func dbSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db:seed",
		Short: "Insert the starter catalog into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := database.Connect(ctx); err != nil {
				return err
			}
			defer database.Disconnect(context.Background()) //nolint:errcheck

			return seeders.Run(ctx)
		},
	}
}
