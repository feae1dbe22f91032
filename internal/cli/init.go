package cli

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty calendar in the data directory",
	Long: `Create an empty appointments file (and users file) in the data directory.

Every other command requires the appointments file to exist; a missing file is
a fatal condition, not something that is silently created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openStore().Init(); err != nil {
			return err
		}
		printSuccess("Initialized empty calendar in %s", dataDir())
		return nil
	},
}
