package dispatch

import "strings"

const (
	DefaultBinary   = "kubectl"
	DefaultLauncher = "xterm -e"
)

// Env is the read-only per-run configuration shared by every target in a
// selection.
type Env struct {
	Binary      string // exec binary, DefaultBinary when empty
	Cluster     string // kubeconfig context name, passed as --context
	Impersonate string // optional identity, passed as --as
	Terminal    string // default terminal launcher, e.g. "xterm -e"
}

func (e Env) binary() string {
	if e.Binary == "" {
		return DefaultBinary
	}
	return e.Binary
}

// AttachFlags control how the operator's terminal is wired to the remote
// process. Contrary to kubectl, both default to true.
type AttachFlags struct {
	TTY   bool
	Stdin bool
}

func DefaultAttach() AttachFlags { return AttachFlags{TTY: true, Stdin: true} }

func (a AttachFlags) token() string {
	switch {
	case a.TTY && a.Stdin:
		return "-it"
	case a.TTY:
		return "-t"
	case a.Stdin:
		return "-i"
	default:
		return ""
	}
}

// Mode selects how an invocation runs: blocking in the foreground, or
// detached in a new terminal window.
type Mode struct {
	terminal bool
	launcher string
}

func Foreground() Mode { return Mode{} }

// Terminal returns the detached mode. A non-empty override replaces the
// configured launcher for this call only.
func Terminal(override string) Mode {
	return Mode{terminal: true, launcher: override}
}

func (m Mode) Detached() bool { return m.terminal }

// Request is one exec invocation against one target.
type Request struct {
	Target    Target
	Container string
	Command   []string
	Attach    AttachFlags
	Mode      Mode
}

// Args builds the argv for a request, argv[0] included. Terminal mode
// prefixes the launcher tokens and places the container flag before the
// impersonation identity; foreground order is the reverse. The -- always
// sits immediately before the command tokens.
func Args(env Env, req Request) []string {
	var argv []string
	if req.Mode.terminal {
		argv = launcherTokens(env, req.Mode)
	}
	argv = append(argv,
		env.binary(),
		"--namespace", req.Target.Namespace,
		"--context", env.Cluster,
		"exec",
	)
	if tok := req.Attach.token(); tok != "" {
		argv = append(argv, tok)
	}
	argv = append(argv, req.Target.Name)
	if req.Mode.terminal {
		if req.Container != "" {
			argv = append(argv, "-c", req.Container)
		}
		if env.Impersonate != "" {
			argv = append(argv, "--as", env.Impersonate)
		}
	} else {
		if env.Impersonate != "" {
			argv = append(argv, "--as", env.Impersonate)
		}
		if req.Container != "" {
			argv = append(argv, "-c", req.Container)
		}
	}
	argv = append(argv, "--")
	return append(argv, req.Command...)
}

// launcherTokens resolves the terminal launcher: per-call override, then
// the configured default, then DefaultLauncher. A launcher that splits to
// zero tokens falls through, so the result always has at least one.
func launcherTokens(env Env, m Mode) []string {
	for _, s := range []string{m.launcher, env.Terminal} {
		if toks := strings.Fields(s); len(toks) > 0 {
			return toks
		}
	}
	return strings.Fields(DefaultLauncher)
}
