package dispatch

// Launcher starts external processes on behalf of the dispatcher. The OS
// implementation is OSLauncher; tests substitute a recording fake.
type Launcher interface {
	// Run starts the program attached to the caller's stdio and blocks
	// until it exits.
	Run(name string, args []string) error
	// Start launches the program detached and returns its pid.
	Start(name string, args []string) (int, error)
}
