package cli

import (
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a new calendar user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openScheduler()
		if err != nil {
			return err
		}

		u, err := s.RegisterUser(args[0])
		if err != nil {
			return presentError(err)
		}
		printSuccess("Registered user %s", u.Name)
		return nil
	},
}
