package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func detailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail <mechanic-id>",
		Short: "Show a mechanic's services, areas, hours and location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid mechanic id %q", args[0])
			}

			details, err := directorySvc.MechanicDetails(context.Background(), tenantID)
			if err != nil {
				return err
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(details)
			}

			fmt.Println(details.Name)
			if details.Address != "" {
				fmt.Println(details.Address)
			}
			if details.Phone != "" {
				fmt.Printf("Phone: %s\n", details.Phone)
			}
			if details.Email != "" {
				fmt.Printf("Email: %s\n", details.Email)
			}
			if details.LicenseNumber != "" {
				fmt.Printf("License: %s\n", details.LicenseNumber)
			}

			if len(details.Services) > 0 {
				fmt.Println("\nServices:")
				for _, svc := range details.Services {
					fmt.Printf("  - %s: %s\n", svc.Title, svc.Description)
				}
			}
			if len(details.ServicingAreas) > 0 {
				fmt.Println("\nServicing areas:")
				for _, area := range details.ServicingAreas {
					fmt.Printf("  - %s (%d)\n", area.CityName, area.PostalCode)
				}
			}

			fmt.Println("\nOpening hours:")
			for _, oh := range details.OpeningHours {
				if oh.Status {
					fmt.Printf("  %-9s %s - %s\n", oh.Day, oh.StartTime, oh.EndTime)
				} else {
					fmt.Printf("  %-9s closed\n", oh.Day)
				}
			}

			for _, loc := range details.Locations {
				fmt.Printf("\nLocation: %.5f, %.5f\n", loc.Coordinate.Latitude, loc.Coordinate.Longitude)
			}
			return nil
		},
	}
	return cmd
}
