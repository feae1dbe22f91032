// Package cli is the management surface for the shared calendar: the thin
// collaborator shell around the scheduler. It parses candidate fields, hands
// them to the mutation service, and reports the outcome.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Persistent flags
	flagUser    string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "calendar",
	Version: "dev",
	Short:   "Shared appointment calendar with double-booking protection",
	Long: `calendar maintains a shared calendar of appointments among registered users.

Appointments are conflict-checked before every commit: no participant can be
booked into two overlapping appointments, and back-to-back appointments that
touch at an endpoint count as overlapping.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the build version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Current user name (defaults to $CALENDAR_USER)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Calendar data directory (defaults to $CALENDAR_DATA_DIR, then .)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
