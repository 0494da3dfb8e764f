package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gungnir/cli/style"
	"gungnir/track"
)

var sessionsPrune bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List terminal sessions launched by exec",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsPrune, "prune", false, "Drop sessions whose process is gone")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	store := track.NewStore(sessionsPath())

	if sessionsPrune {
		removed, err := store.Prune()
		if err != nil {
			return err
		}
		fmt.Println(style.DimText.Render(fmt.Sprintf("Pruned %d session(s).", removed)))
	}

	sessions, err := store.Load()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println(style.DimText.Render("No recorded sessions. Launch one with exec --terminal."))
		return nil
	}

	fmt.Println(style.Banner.Render("➤ SESSIONS") + style.Subtitle.Render(fmt.Sprintf("  %d recorded", len(sessions))))
	fmt.Println()

	header := fmt.Sprintf(
		"  %-2s  %-40s %-16s %-8s %-9s %s",
		"", "POD", "CLUSTER", "PID", "STARTED", "COMMAND",
	)
	fmt.Println(style.TableHeader.Render(header))

	for _, s := range sessions {
		fmt.Printf("  %s  %s %s %-8d %-9s %s\n",
			style.AliveDot(s.Alive()),
			style.Bold.Render(padRight(s.Namespace+"/"+s.Pod, 40)),
			padRight(s.Cluster, 16),
			s.PID,
			humanAge(time.Since(s.StartedAt)),
			style.DimText.Render(strings.Join(s.Command, " ")),
		)
	}
	fmt.Println()

	return nil
}
