package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/netra/gallery/internal/api"
	"github.com/netra/gallery/internal/repository"
	"github.com/netra/gallery/internal/services"
	"github.com/spf13/cobra"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the HTTP route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := repository.NewMemoryStore(nil)
			hub := services.NewWebSocketHub()

			router := api.NewRouter(api.Deps{
				Store:          store,
				Gallery:        services.NewGalleryService(store, hub),
				Contact:        services.NewContactService(store.ContactMessages, nil),
				Hub:            hub,
				MetricsEnabled: true,
			})

			routes, err := api.Routes(router)
			if err != nil {
				return fmt.Errorf("walk routes: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH")
			for _, r := range routes {
				fmt.Fprintf(tw, "%s\t%s\n", r.Method, r.Pattern)
			}
			return tw.Flush()
		},
	}
}
