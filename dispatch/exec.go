package dispatch

import (
	"os"
	"os/exec"
)

type OSLauncher struct{}

func NewOSLauncher() *OSLauncher {
	return &OSLauncher{}
}

func (l *OSLauncher) Run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (l *OSLauncher) Start(name string, args []string) (int, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	go cmd.Wait() // reap the child when the terminal closes
	return cmd.Process.Pid, nil
}
