package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/model"
)

func inquireCmd() *cobra.Command {
	var rego string
	var name string
	var email string
	var phone string
	var message string
	var dateInput string

	cmd := &cobra.Command{
		Use:   "inquire <mechanic-id>",
		Short: "Submit a service inquiry to a mechanic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid mechanic id %q", args[0])
			}

			date, err := time.Parse("2006-01-02", dateInput)
			if err != nil {
				return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", dateInput)
			}

			form := model.InquiryForm{
				VehicleRegistration: rego,
				Name:                name,
				Email:               email,
				PhoneNumber:         phone,
				Message:             message,
				Date:                &date,
			}
			if !form.IsValid() {
				return fmt.Errorf("all of --rego, --name, --email, --phone, --message and --date are required")
			}

			_, err = submitter.Submit(context.Background(), tenantID, form)
			fmt.Println(booking.StatusMessage(err))
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rego, "rego", "", "Vehicle registration number")
	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone number")
	cmd.Flags().StringVar(&message, "message", "", "Message to the mechanic")
	cmd.Flags().StringVar(&dateInput, "date", "", "Requested date (YYYY-MM-DD)")
	return cmd
}
