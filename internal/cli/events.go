package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linguaverse/statistics-service/internal/models"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Activity event commands",
	Long:  "Record and inspect activity events in the statistics service",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activity events",
	Example: `  statsctl events list
  statsctl events list --user u-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		var (
			events []models.ActivityEvent
			err    error
		)
		if userID != "" {
			events, err = newClient().ListEventsForUser(userID)
		} else {
			events, err = newClient().ListEvents()
		}
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		return printJSON(events)
	},
}

var eventsSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Record an activity event",
	Example: `  statsctl events send --user u-123 --type lesson_completed
  statsctl events send --user u-123 --type login --data '{"device":"mobile"}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		kind, _ := cmd.Flags().GetString("type")
		data, _ := cmd.Flags().GetString("data")

		if userID == "" || kind == "" {
			return fmt.Errorf("both --user and --type are required")
		}

		req := models.CreateEventRequest{OwnerID: userID, Kind: kind}
		if data != "" {
			if err := json.Unmarshal([]byte(data), &req.Payload); err != nil {
				return fmt.Errorf("invalid --data JSON: %w", err)
			}
		}

		event, err := newClient().SendEvent(req)
		if err != nil {
			return fmt.Errorf("failed to record event: %w", err)
		}

		success("Event %s recorded", event.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Record a user login event",
	Example: `  statsctl login --user u-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		if err := newClient().RecordLogin(userID); err != nil {
			return fmt.Errorf("failed to record login: %w", err)
		}

		success("Login recorded for %s", userID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(loginCmd)
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsSendCmd)

	eventsListCmd.Flags().StringP("user", "u", "", "only events owned by this user")
	eventsSendCmd.Flags().StringP("user", "u", "", "owning user ID")
	eventsSendCmd.Flags().StringP("type", "t", "", "event type")
	eventsSendCmd.Flags().String("data", "", "JSON event payload")
	loginCmd.Flags().StringP("user", "u", "", "user ID")
}
