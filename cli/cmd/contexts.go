package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gungnir/cli/style"
	"gungnir/kube"
)

var contextsCmd = &cobra.Command{
	Use:     "contexts",
	Short:   "List kubeconfig contexts",
	Aliases: []string{"ctx"},
	Args:    cobra.NoArgs,
	RunE:    runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, args []string) error {
	current, all, err := kube.Contexts(kubeconfigPath())
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println(style.DimText.Render("No contexts in kubeconfig."))
		return nil
	}

	fmt.Println(style.Banner.Render("➤ CONTEXTS"))
	fmt.Println()
	for _, name := range all {
		namespace := kube.Namespace(kubeconfigPath(), name)
		if name == current {
			fmt.Printf("  %s %s  %s\n", style.DotHealthy, style.Bold.Render(name), style.DimText.Render(namespace))
			continue
		}
		fmt.Printf("  %s %s  %s\n", style.DotDim, name, style.DimText.Render(namespace))
	}
	fmt.Println()

	return nil
}
