package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/quickstationery/config"
	"github.com/shashiranjanraj/quickstationery/internal/server"
	"github.com/shashiranjanraj/quickstationery/pkg/app"
)

// quickstationery serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// quickstationery route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}

		infos := a.Router().Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

// bootApp loads config and wires the application for one-shot commands.
func bootApp() (*app.Application, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return app.New()
}
