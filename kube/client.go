package kube

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"gungnir/dispatch"
)

type Client struct {
	cs *kubernetes.Clientset
}

// NewClient builds a clientset from kubeconfig, honoring an explicit
// context override. gungnir always runs operator-side, so there is no
// in-cluster path.
func NewClient(kubeconfig, contextName string) (*Client, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: contextName}
	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("k8s config: %w", err)
	}
	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("k8s clientset: %w", err)
	}
	return &Client{cs: cs}, nil
}

// Pod is the slice of pod state gungnir cares about: enough to pick a
// target and render a status line.
type Pod struct {
	Name       string
	Namespace  string
	Phase      string
	Ready      string // e.g. "1/2"
	Restarts   int
	Containers []string
	Age        time.Duration
}

func (p Pod) Target() dispatch.Target { return dispatch.Pod(p.Name, p.Namespace) }

func (c *Client) ListPods(ctx context.Context, namespace, selector string) ([]Pod, error) {
	list, err := c.cs.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: selector,
	})
	if err != nil {
		return nil, err
	}
	pods := make([]Pod, 0, len(list.Items))
	for i := range list.Items {
		pods = append(pods, podInfo(&list.Items[i]))
	}
	return pods, nil
}

// Containers returns the container names of one pod, for completion and
// the picker detail line.
func (c *Client) Containers(ctx context.Context, namespace, pod string) ([]string, error) {
	p, err := c.cs.CoreV1().Pods(namespace).Get(ctx, pod, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(p.Spec.Containers))
	for _, ctr := range p.Spec.Containers {
		names = append(names, ctr.Name)
	}
	return names, nil
}

func podInfo(p *corev1.Pod) Pod {
	info := Pod{
		Name:      p.Name,
		Namespace: p.Namespace,
		Phase:     string(p.Status.Phase),
		Age:       time.Since(p.CreationTimestamp.Time),
	}
	ready := 0
	for _, status := range p.Status.ContainerStatuses {
		if status.Ready {
			ready++
		}
		info.Restarts += int(status.RestartCount)
	}
	for _, ctr := range p.Spec.Containers {
		info.Containers = append(info.Containers, ctr.Name)
	}
	info.Ready = fmt.Sprintf("%d/%d", ready, len(p.Spec.Containers))
	return info
}
