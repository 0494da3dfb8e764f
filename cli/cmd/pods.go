package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gungnir/cli/style"
)

var podsSelector string

var podsCmd = &cobra.Command{
	Use:     "pods",
	Short:   "List pods in the current namespace",
	Aliases: []string{"po", "ls"},
	Args:    cobra.NoArgs,
	RunE:    runPods,
}

func init() {
	podsCmd.Flags().StringVarP(&podsSelector, "selector", "l", "", "Select pods by label")
	rootCmd.AddCommand(podsCmd)
}

func runPods(cmd *cobra.Command, args []string) error {
	client, err := newKubeClient()
	if err != nil {
		return err
	}
	cluster := currentCluster()
	namespace := currentNamespace(cluster)

	pods, err := client.ListPods(cmd.Context(), namespace, podsSelector)
	if err != nil {
		return fmt.Errorf("failed to list pods: %w", err)
	}

	if len(pods) == 0 {
		fmt.Println(style.DimText.Render("No pods in " + namespace + "."))
		return nil
	}

	fmt.Println(style.Banner.Render("➤ PODS") + style.Subtitle.Render(fmt.Sprintf("  %s/%s  %d pod(s)", cluster, namespace, len(pods))))
	fmt.Println()

	header := fmt.Sprintf(
		"  %-2s  %-40s %-7s %-9s %-7s %s",
		"", "NAME", "READY", "RESTARTS", "AGE", "CONTAINERS",
	)
	fmt.Println(style.TableHeader.Render(header))

	for _, p := range pods {
		ready := padRight(p.Ready, 7)
		if allReady(p.Ready) && p.Phase == "Running" {
			ready = style.Healthy.Render(ready)
		} else {
			ready = style.Warning.Render(ready)
		}
		fmt.Printf("  %s  %s %s %-9d %-7s %s\n",
			style.PhaseDot(p.Phase),
			style.Bold.Render(padRight(p.Name, 40)),
			ready,
			p.Restarts,
			humanAge(p.Age),
			style.DimText.Render(strings.Join(p.Containers, ",")),
		)
	}
	fmt.Println()

	return nil
}

// allReady reports whether a "ready/total" pair is complete.
func allReady(ready string) bool {
	parts := strings.Split(ready, "/")
	return len(parts) == 2 && parts[0] == parts[1]
}

// humanAge renders a duration the way kubectl does: 12s, 5m, 3h, 2d.
func humanAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
