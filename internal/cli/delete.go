package cli

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your appointments",
	Long: `Delete an appointment you created.

Deletion is unconditional: no conflict check runs, because removing an
appointment cannot create a double-booking.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		s, err := openScheduler()
		if err != nil {
			return err
		}

		if err := s.SubmitDelete(user, args[0]); err != nil {
			return presentError(err)
		}
		printSuccess("Deleted appointment %s", args[0])
		return nil
	},
}
