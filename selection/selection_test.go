package selection

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gungnir/dispatch"
)

func TestApplyOrderAndSeparator(t *testing.T) {
	out := &bytes.Buffer{}
	targets := Pods("default", "web-0", "web-1", "web-2")

	var seen []string
	err := Apply(out, targets, Policy{Separator: "---"}, func(target dispatch.Target) error {
		seen = append(seen, target.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := strings.Join(seen, ","); got != "web-0,web-1,web-2" {
		t.Errorf("order = %s, want web-0,web-1,web-2", got)
	}
	if got := out.String(); got != "---\n---\n" {
		t.Errorf("separators = %q, want two lines between three targets", got)
	}
}

func TestApplySingleTargetNoSeparator(t *testing.T) {
	out := &bytes.Buffer{}
	err := Apply(out, Pods("default", "web-0"), Policy{Separator: "---"}, func(dispatch.Target) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("out = %q, want no separator for a single target", out.String())
	}
}

func TestApplyStopOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	err := Apply(&bytes.Buffer{}, Pods("default", "web-0", "web-1"), Policy{StopOnError: true}, func(dispatch.Target) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Apply() error = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after abort", calls)
	}
}

func TestApplyContinueAggregates(t *testing.T) {
	failed := map[string]error{
		"web-0": errors.New("first"),
		"web-2": errors.New("second"),
	}
	var calls int
	err := Apply(&bytes.Buffer{}, Pods("default", "web-0", "web-1", "web-2"), Policy{}, func(target dispatch.Target) error {
		calls++
		return failed[target.Name]
	})
	if calls != 3 {
		t.Fatalf("calls = %d, want all 3 targets", calls)
	}
	if err == nil {
		t.Fatal("Apply() = nil, want aggregated error")
	}
	for name, cause := range failed {
		if !errors.Is(err, cause) {
			t.Errorf("aggregate does not wrap %v", cause)
		}
		if !strings.Contains(err.Error(), name+": ") {
			t.Errorf("aggregate %q missing %s prefix", err.Error(), name)
		}
	}
}

func TestApplyKeepsDispatchKind(t *testing.T) {
	err := Apply(&bytes.Buffer{}, Pods("default", "web-0"), Policy{}, func(dispatch.Target) error {
		return &dispatch.Error{Kind: dispatch.ErrPrecondition, Msg: "Exec only possible on pods"}
	})
	if dispatch.KindOf(err) != dispatch.ErrPrecondition {
		t.Errorf("KindOf = %q, want precondition through the aggregate", dispatch.KindOf(err))
	}
}
