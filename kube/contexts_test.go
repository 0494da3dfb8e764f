package kube

import (
	"os"
	"path/filepath"
	"testing"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: prod
clusters:
- name: prod
  cluster:
    server: https://prod.example.com
- name: staging
  cluster:
    server: https://staging.example.com
contexts:
- name: prod
  context:
    cluster: prod
    user: admin
- name: staging
  context:
    cluster: staging
    user: admin
    namespace: team-a
users:
- name: admin
  user: {}
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(testKubeconfig), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestContexts(t *testing.T) {
	path := writeKubeconfig(t)
	current, all, err := Contexts(path)
	if err != nil {
		t.Fatalf("Contexts() error = %v", err)
	}
	if current != "prod" {
		t.Errorf("current = %q, want prod", current)
	}
	if len(all) != 2 || all[0] != "prod" || all[1] != "staging" {
		t.Errorf("all = %v, want [prod staging]", all)
	}
}

func TestNamespace(t *testing.T) {
	path := writeKubeconfig(t)
	tests := []struct {
		name    string
		context string
		want    string
	}{
		{"context with namespace", "staging", "team-a"},
		{"context without namespace", "prod", "default"},
		{"current context fallback", "", "default"},
		{"unknown context", "nope", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Namespace(path, tt.context); got != tt.want {
				t.Errorf("Namespace(%q) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}
