package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Student report commands",
}

var studentDashboardCmd = &cobra.Command{
	Use:     "dashboard <student-id>",
	Short:   "Show a student's dashboard counters",
	Args:    cobra.ExactArgs(1),
	Example: `  statsctl student dashboard s-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newClient().StudentDashboard(args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch dashboard: %w", err)
		}
		return printJSON(report)
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative report commands",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users [month]",
	Short: "Monthly user registration report",
	Long:  "Registration counts for the given YYYY-MM month, or the current month when omitted.",
	Args:  cobra.MaximumNArgs(1),
	Example: `  statsctl admin users
  statsctl admin users 2024-07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		report, err := newClient().RegistrationStats(month)
		if err != nil {
			return fmt.Errorf("failed to fetch registration stats: %w", err)
		}
		return printJSON(report)
	},
}

var adminLessonsCmd = &cobra.Command{
	Use:   "lessons [month]",
	Short: "Monthly lesson activity report",
	Args:  cobra.MaximumNArgs(1),
	Example: `  statsctl admin lessons
  statsctl admin lessons 2024-07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		report, err := newClient().LessonStats(month)
		if err != nil {
			return fmt.Errorf("failed to fetch lesson stats: %w", err)
		}
		return printJSON(report)
	},
}

var adminPlatformCmd = &cobra.Command{
	Use:     "platform",
	Short:   "Platform-wide summary report",
	Example: `  statsctl admin platform`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newClient().PlatformStats()
		if err != nil {
			return fmt.Errorf("failed to fetch platform stats: %w", err)
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(adminCmd)
	studentCmd.AddCommand(studentDashboardCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminLessonsCmd)
	adminCmd.AddCommand(adminPlatformCmd)
}
