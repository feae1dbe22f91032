package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the editable fields of one of your appointments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		s, err := openScheduler()
		if err != nil {
			return err
		}

		form, err := s.SelectAppointment(user, args[0])
		if err != nil {
			return presentError(err)
		}

		fmt.Printf("Title:        %s\n", form.Title)
		fmt.Printf("Description:  %s\n", form.Description)
		fmt.Printf("Date:         %s\n", form.Date.Format("2006-01-02"))
		fmt.Printf("Start:        %02d:%02d\n", form.StartHour, form.StartMinute)
		fmt.Printf("End:          %02d:%02d\n", form.EndHour, form.EndMinute)
		fmt.Printf("Participants: %s\n", strings.Join(form.Participants, ", "))
		return nil
	},
}
