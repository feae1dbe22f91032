package cli

import (
	"github.com/spf13/cobra"

	"shared-calendar/internal/scheduler"
)

var (
	updateTitle        string
	updateDescription  string
	updateDate         string
	updateStart        string
	updateEnd          string
	updateParticipants []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update one of your appointments",
	Long: `Update an appointment you created, replacing all of its fields.

The participant selection replaces the existing participant set; you are
always re-added as a participant even when omitted from the selection. The
edit is committed only if it passes the same interval and double-booking
validation as a new appointment, ignoring the appointment being edited.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		date, err := parseDate(updateDate)
		if err != nil {
			return err
		}
		startHour, startMinute, err := parseClock(updateStart)
		if err != nil {
			return err
		}
		endHour, endMinute, err := parseClock(updateEnd)
		if err != nil {
			return err
		}

		s, err := openScheduler()
		if err != nil {
			return err
		}

		a, err := s.SubmitUpdate(&scheduler.UpdateRequest{
			ID:           args[0],
			CurrentUser:  user,
			Title:        updateTitle,
			Description:  updateDescription,
			Date:         date,
			StartHour:    startHour,
			StartMinute:  startMinute,
			EndHour:      endHour,
			EndMinute:    endMinute,
			Participants: updateParticipants,
		})
		if err != nil {
			return presentError(err)
		}
		printSuccess("Updated appointment %s", a.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "Appointment title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Appointment description")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "Date of the appointment (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateStart, "start", "", "Start time (HH:MM)")
	updateCmd.Flags().StringVar(&updateEnd, "end", "", "End time (HH:MM)")
	updateCmd.Flags().StringSliceVarP(&updateParticipants, "with", "w", nil, "Participant names (repeatable)")

	_ = updateCmd.MarkFlagRequired("date")
	_ = updateCmd.MarkFlagRequired("start")
	_ = updateCmd.MarkFlagRequired("end")
}
