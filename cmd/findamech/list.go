package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgayashan/FindAMechanic/internal/directory"
	"github.com/rgayashan/FindAMechanic/internal/model"
)

func listCmd() *cobra.Command {
	var page int
	var pageSize int
	var search string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mechanics, optionally filtered by a search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageSize <= 0 {
				pageSize = cfg.Upstream.PageSize
			}
			ctx := context.Background()

			var mechanics []model.Mechanic
			hasMore := false

			if all {
				pager := directory.NewPager(directorySvc, pageSize)
				pager.Reset(search)
				for pager.HasMore() {
					if _, err := pager.LoadNext(ctx); err != nil {
						return err
					}
				}
				mechanics = pager.Mechanics()
			} else {
				fetched, err := directorySvc.ListMechanics(ctx, page, pageSize, search)
				if err != nil {
					return err
				}
				mechanics = fetched
				hasMore = len(fetched) >= pageSize
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(mechanics)
			}

			if len(mechanics) == 0 {
				fmt.Println("No mechanics found.")
				return nil
			}
			for _, m := range mechanics {
				fmt.Printf("%s  %s\n", m.ID, m.Name)
				fmt.Printf("    %s\n", m.AddressLine1)
				if m.AddressLine2 != "" {
					fmt.Printf("    %s\n", m.AddressLine2)
				}
				if m.Phone != "" {
					fmt.Printf("    %s\n", m.Phone)
				}
			}
			if hasMore {
				fmt.Printf("More results available; rerun with --page %d\n", page+1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Items per page (defaults to config)")
	cmd.Flags().StringVar(&search, "search", "", "Search term forwarded to the server")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch every page")
	return cmd
}
