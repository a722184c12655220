package constants

// RunStatus is the canonical status for rows in listing_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusQueued    RunStatus = "QUEUED"    // accepted, not started
	RunStatusRunning   RunStatus = "RUNNING"   // pipeline in progress
	RunStatusSucceeded RunStatus = "SUCCEEDED" // listing produced
	RunStatusFailed    RunStatus = "FAILED"    // terminal failure
)

var allRunStatuses = []RunStatus{
	RunStatusQueued,
	RunStatusRunning,
	RunStatusSucceeded,
	RunStatusFailed,
}

func RunStatusesAsStringSlice() []string {
	result := make([]string, len(allRunStatuses))
	for i, s := range allRunStatuses {
		result[i] = string(s)
	}
	return result
}
