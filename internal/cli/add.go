package cli

import (
	"github.com/spf13/cobra"

	"shared-calendar/internal/scheduler"
)

var (
	addTitle        string
	addDescription  string
	addDate         string
	addStart        string
	addEnd          string
	addParticipants []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new appointment",
	Long: `Create a new appointment owned by the current user.

The appointment is committed only if the end time is after the start time and
no selected participant is already booked in an overlapping appointment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		date, err := parseDate(addDate)
		if err != nil {
			return err
		}
		startHour, startMinute, err := parseClock(addStart)
		if err != nil {
			return err
		}
		endHour, endMinute, err := parseClock(addEnd)
		if err != nil {
			return err
		}

		s, err := openScheduler()
		if err != nil {
			return err
		}

		a, err := s.SubmitCreate(&scheduler.CreateRequest{
			CurrentUser:  user,
			Title:        addTitle,
			Description:  addDescription,
			Date:         date,
			StartHour:    startHour,
			StartMinute:  startMinute,
			EndHour:      endHour,
			EndMinute:    endMinute,
			Participants: addParticipants,
		})
		if err != nil {
			return presentError(err)
		}
		printSuccess("Created appointment %s", a.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Appointment title")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Appointment description")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date of the appointment (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (HH:MM)")
	addCmd.Flags().StringSliceVarP(&addParticipants, "with", "w", nil, "Participant names (repeatable)")

	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
