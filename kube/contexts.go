package kube

import (
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
)

func loadRules(kubeconfig string) *clientcmd.ClientConfigLoadingRules {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	return rules
}

// Contexts reads the kubeconfig and returns the current context name and
// all context names, sorted.
func Contexts(kubeconfig string) (string, []string, error) {
	raw, err := loadRules(kubeconfig).Load()
	if err != nil {
		return "", nil, fmt.Errorf("k8s config: %w", err)
	}
	names := make([]string, 0, len(raw.Contexts))
	for name := range raw.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return raw.CurrentContext, names, nil
}

// Namespace returns the namespace the named context points at, falling
// back to "default". An empty contextName means the current context.
func Namespace(kubeconfig, contextName string) string {
	raw, err := loadRules(kubeconfig).Load()
	if err != nil {
		return "default"
	}
	if contextName == "" {
		contextName = raw.CurrentContext
	}
	if ctx, ok := raw.Contexts[contextName]; ok && ctx.Namespace != "" {
		return ctx.Namespace
	}
	return "default"
}
