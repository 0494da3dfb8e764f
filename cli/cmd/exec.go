package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gungnir/cli/style"
	"gungnir/dispatch"
	"gungnir/kube"
	"gungnir/selection"
	"gungnir/track"
)

// value of --terminal when the flag is given bare; pflag prints it in the
// usage line, and an explicit --terminal=default asks for the configured
// launcher the same way
const terminalNoValue = "default"

var (
	flagContainer string
	flagTerminal  string
	flagTty       bool
	flagStdin     bool
	flagSelector  string
	flagFailFast  bool
)

var execCmd = &cobra.Command{
	Use:   "exec [pod...] -- <command...>",
	Short: "Run a command in pods",
	Long: `Run a command in one or more pods through kubectl.

Pods come from the arguments before the --, from a label selector, or from
an interactive picker when neither is given. The command after the -- runs
in every selected pod, one at a time.

With --terminal each pod gets its own detached terminal window instead;
gungnir keeps a record of those launches (see "gungnir sessions").`,
	Example: `  gungnir exec web-0 -- ls /app
  gungnir exec web-0 web-1 -- cat /etc/hostname
  gungnir exec -l app=web --fail-fast -- ./reload.sh
  gungnir exec -t web-0 -- sh`,
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completePods,
	RunE:              runExec,
}

func init() {
	execCmd.Flags().StringVarP(&flagContainer, "container", "c", "", "Exec in this container")
	execCmd.Flags().StringVarP(&flagTerminal, "terminal", "t", "", "Run in a new terminal; with --terminal=CMD, CMD is the launcher")
	execCmd.Flags().Lookup("terminal").NoOptDefVal = terminalNoValue
	execCmd.Flags().BoolVarP(&flagTty, "tty", "T", true, "Allocate a TTY (contrary to kubectl, defaults to true)")
	execCmd.Flags().BoolVarP(&flagStdin, "stdin", "i", true, "Pass stdin to the container (contrary to kubectl, defaults to true)")
	execCmd.Flags().StringVarP(&flagSelector, "selector", "l", "", "Select pods by label")
	execCmd.Flags().BoolVar(&flagFailFast, "fail-fast", false, "Stop at the first pod that fails")
	execCmd.RegisterFlagCompletionFunc("container", completeContainers)
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 || dash == len(args) {
		return errors.New("exec needs a command after the -- (gungnir exec [pod...] -- <command...>)")
	}
	names, command := args[:dash], args[dash:]

	cluster := currentCluster()
	if cluster == "" {
		return &dispatch.Error{Kind: dispatch.ErrPrecondition, Msg: "Need an active context in order to exec."}
	}
	namespace := currentNamespace(cluster)

	targets, err := execTargets(cmd, names, namespace)
	if err != nil {
		return err
	}

	env := dispatch.Env{
		Binary:      cfg.KubectlBinary,
		Cluster:     cluster,
		Impersonate: impersonation(),
		Terminal:    cfg.Terminal,
	}
	mode := execMode(cmd.Flags().Changed("terminal"), flagTerminal)

	d := dispatch.NewDispatcher(env)
	if mode.Detached() {
		store := track.NewStore(sessionsPath())
		d.OnLaunch = func(target dispatch.Target, pid int, argv []string) {
			if _, err := store.Record(cluster, target, pid, argv, command); err != nil {
				fmt.Fprintln(os.Stderr, style.Warning.Render(fmt.Sprintf("WARNING: session not recorded: %v", err)))
			}
		}
	}

	pol := selection.Policy{Separator: cfg.RangeSeparator, StopOnError: flagFailFast}
	return selection.Apply(os.Stdout, targets, pol, func(target dispatch.Target) error {
		return d.Exec(dispatch.Request{
			Target:    target,
			Container: flagContainer,
			Command:   command,
			Attach:    dispatch.AttachFlags{TTY: flagTty, Stdin: flagStdin},
			Mode:      mode,
		})
	})
}

// execMode maps the --terminal flag state onto a dispatch mode: presence
// alone selects terminal mode, a real value also overrides the launcher.
func execMode(changed bool, value string) dispatch.Mode {
	if !changed {
		return dispatch.Foreground()
	}
	if value == terminalNoValue {
		value = ""
	}
	return dispatch.Terminal(value)
}

// execTargets turns the exec invocation into an ordered pod selection:
// named pods as given, else a label selector query, else the interactive
// picker.
func execTargets(cmd *cobra.Command, names []string, namespace string) ([]dispatch.Target, error) {
	if len(names) > 0 {
		return selection.Pods(namespace, names...), nil
	}

	client, err := newKubeClient()
	if err != nil {
		return nil, err
	}
	if flagSelector != "" {
		pods, err := client.ListPods(cmd.Context(), namespace, flagSelector)
		if err != nil {
			return nil, err
		}
		if len(pods) == 0 {
			return nil, fmt.Errorf("no pods match -l %s in %s", flagSelector, namespace)
		}
		return toTargets(pods), nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil, errors.New("no pods given; name pods, use -l, or run on a terminal to pick")
	}
	picked, err := pickPods(namespace, client)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, errors.New("no pods selected")
	}
	return toTargets(picked), nil
}

func toTargets(pods []kube.Pod) []dispatch.Target {
	targets := make([]dispatch.Target, 0, len(pods))
	for _, p := range pods {
		targets = append(targets, p.Target())
	}
	return targets
}

func completePods(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	client, err := newKubeClient()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	pods, err := client.ListPods(cmd.Context(), currentNamespace(currentCluster()), flagSelector)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(pods))
	for _, p := range pods {
		names = append(names, p.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeContainers offers the containers of the first named pod.
func completeContainers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	client, err := newKubeClient()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	containers, err := client.Containers(cmd.Context(), currentNamespace(currentCluster()), args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return containers, cobra.ShellCompDirectiveNoFileComp
}
