package selection

import (
	"errors"
	"fmt"
	"io"

	"gungnir/dispatch"
)

// Policy controls how a multi-target run proceeds. The dispatcher itself
// never decides batch behavior.
type Policy struct {
	Separator   string // written between per-target outputs
	StopOnError bool   // abort the remaining targets on the first error
}

// Pods builds an ordered pod selection in a single namespace.
func Pods(namespace string, names ...string) []dispatch.Target {
	targets := make([]dispatch.Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, dispatch.Pod(name, namespace))
	}
	return targets
}

// Apply invokes fn for each target in order. With StopOnError the first
// failure aborts the rest; otherwise every target runs and the failures
// come back aggregated, each prefixed with its target name.
func Apply(out io.Writer, targets []dispatch.Target, pol Policy, fn func(dispatch.Target) error) error {
	var errs []error
	for i, target := range targets {
		if i > 0 && pol.Separator != "" {
			fmt.Fprintln(out, pol.Separator)
		}
		err := fn(target)
		if err == nil {
			continue
		}
		if pol.StopOnError {
			return err
		}
		errs = append(errs, fmt.Errorf("%s: %w", target.Name, err))
	}
	return errors.Join(errs...)
}
