package types

import "time"

// OperationResult is the outcome of executing a single operation
type OperationResult struct {
	Operation Operation
	Success   bool
	// Skipped marks a successful result where the work was intentionally not done
	Skipped bool
	Message string
	// Notices are non-fatal follow-ups for the user, such as a PATH
	// remediation command or a manual install hint
	Notices  []string
	Error    error
	Duration time.Duration
}

// ModuleResult aggregates the operation results of one module
type ModuleResult struct {
	Name        string
	Description string
	Results     []OperationResult
}

// Failures returns the number of operations that did not succeed
func (m ModuleResult) Failures() int {
	failed := 0
	for _, r := range m.Results {
		if !r.Success {
			failed++
		}
	}
	return failed
}

// Success reports whether every operation of the module succeeded
func (m ModuleResult) Success() bool {
	return m.Failures() == 0
}

// RunResult aggregates all modules installed in one run
type RunResult struct {
	InstallRoot string
	Modules     []ModuleResult
}

// Success is the logical AND of all module results
func (r RunResult) Success() bool {
	for _, m := range r.Modules {
		if !m.Success() {
			return false
		}
	}
	return true
}

// ExitCode maps the run outcome to a process exit status
func (r RunResult) ExitCode() int {
	if r.Success() {
		return 0
	}
	return 1
}
