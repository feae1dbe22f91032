package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users available as appointment participants",
	Long:  `List every registered user except the current user.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		s, err := openScheduler()
		if err != nil {
			return err
		}

		available := s.AvailableUsers(user)
		if len(available) == 0 {
			fmt.Println("No other users registered.")
			return nil
		}
		for _, u := range available {
			fmt.Println(u.Name)
		}
		return nil
	},
}
