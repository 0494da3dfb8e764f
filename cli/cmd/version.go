package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gungnir/cli/style"
	"gungnir/dispatch"
)

var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logo := lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Primary).
			Render(`
  ┌─┐┬ ┬┌┐┌┌─┐┌┐┌┬┬─┐
  │ ┬│ │││││ ┬││││├┬┘
  └─┘└─┘┘└┘└─┘┘└┘┴┴└─`)

		binary := cfg.KubectlBinary
		if binary == "" {
			binary = dispatch.DefaultBinary
		}

		fmt.Println(logo)
		fmt.Println()
		fmt.Printf("  %s %s\n", style.Key.Render("Version"), style.Val.Render(Version))
		fmt.Printf("  %s %s\n", style.Key.Render("Kubectl"), style.Val.Render(binary))
		fmt.Printf("  %s %s\n", style.Key.Render("Config"), style.Val.Render(flagConfig))
		fmt.Println()
		fmt.Println(style.DimText.Render("  Odin's spear never misses its pod."))
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
