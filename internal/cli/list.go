package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your appointments",
	Long: `List the appointments created by the current user.

Appointments you participate in but did not create are not part of your
management view.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		s, err := openScheduler()
		if err != nil {
			return err
		}

		mine := s.MyAppointments(user)
		if len(mine) == 0 {
			fmt.Println("No appointments.")
			return nil
		}
		for _, a := range mine {
			fmt.Printf("%s  %s %s-%s  %s  [%s]\n",
				a.ID,
				a.StartTime.Format("2006-01-02"),
				a.StartTime.Format("15:04"),
				a.EndTime.Format("15:04"),
				a.Title,
				strings.Join(a.ParticipantNames(), ", "),
			)
		}
		return nil
	},
}
