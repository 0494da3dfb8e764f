package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"gungnir/config"
	"gungnir/kube"
)

var (
	cfg *config.Config

	flagConfig     string
	flagKubeconfig string
	flagContext    string
	flagAs         string
	flagNamespace  string
)

var rootCmd = &cobra.Command{
	Use:   "gungnir",
	Short: "Run commands in Kubernetes pods through kubectl",
	Long: `Gungnir — a pod exec dispatcher for Kubernetes.

Named after Odin's spear, which always finds its mark.

Select pods by name, by label, or interactively, then run a command in each
of them through kubectl — blocking in the foreground, or detached with one
terminal window per pod.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().StringVar(&flagKubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	rootCmd.PersistentFlags().StringVar(&flagContext, "context", "", "Kubeconfig context to use")
	rootCmd.PersistentFlags().StringVar(&flagAs, "as", "", "Identity to impersonate")
	rootCmd.PersistentFlags().StringVarP(&flagNamespace, "namespace", "n", "", "Namespace to operate in")
}

// kubeconfigPath resolves flag over config file; empty means the default
// loading chain ($KUBECONFIG, ~/.kube/config).
func kubeconfigPath() string {
	if flagKubeconfig != "" {
		return flagKubeconfig
	}
	return cfg.Kubeconfig
}

// currentCluster resolves the context override, falling back to the
// kubeconfig's current context. Empty means no active context.
func currentCluster() string {
	if flagContext != "" {
		return flagContext
	}
	current, _, err := kube.Contexts(kubeconfigPath())
	if err != nil {
		return ""
	}
	return current
}

// currentNamespace resolves flag over config file over the context's own
// namespace.
func currentNamespace(cluster string) string {
	if flagNamespace != "" {
		return flagNamespace
	}
	if cfg.Namespace != "" {
		return cfg.Namespace
	}
	return kube.Namespace(kubeconfigPath(), cluster)
}

func impersonation() string {
	if flagAs != "" {
		return flagAs
	}
	return cfg.Impersonate
}

func newKubeClient() (*kube.Client, error) {
	return kube.NewClient(kubeconfigPath(), flagContext)
}

func sessionsPath() string {
	return filepath.Join(config.Dir(), "sessions.json")
}
