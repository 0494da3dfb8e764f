package dispatch

type Kind string

const (
	KindPod        Kind = "pod"
	KindDeployment Kind = "deployment"
	KindService    Kind = "service"
	KindNode       Kind = "node"
)

// Target is one selected workload object. Exec only ever operates on
// pod-kind targets with a namespace; other kinds are rejected before any
// process is launched.
type Target struct {
	Name      string
	Namespace string
	Kind      Kind
}

func (t Target) IsPod() bool { return t.Kind == KindPod }

// Pod builds a pod target in the given namespace.
func Pod(name, namespace string) Target {
	return Target{Name: name, Namespace: namespace, Kind: KindPod}
}
