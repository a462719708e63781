package nutrilog

import (
	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log how you feel",
}

var (
	moodNote  string
	moodLimit int
)

var moodLogCmd = &cobra.Command{
	Use:   "log <great|good|okay|bad|awful>",
	Short: "Log a mood",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			entry, err := s.svc.LogMood(s.ctx, args[0], moodNote, s.svc.Today())
			if err != nil {
				return err
			}
			s.printf("Logged mood %s (%s)\n", entry.Mood, entry.ID)
			return nil
		})
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent moods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			moods, err := s.svc.ListMoods(s.ctx, moodLimit)
			if err != nil {
				return err
			}
			s.println("ID\tLOGGED\tMOOD\tNOTE")
			for _, m := range moods {
				s.printf("%s\t%s\t%s\t%s\n", m.ID, m.LoggedAt.In(s.cfg.loc).Format("2006-01-02 15:04"), m.Mood, m.Note)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(moodCmd)
	moodCmd.AddCommand(moodLogCmd, moodListCmd)
	moodLogCmd.Flags().StringVar(&moodNote, "note", "", "Optional note")
	moodListCmd.Flags().IntVar(&moodLimit, "limit", 20, "Max moods to show")
}
