package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// JobStatus is the lifecycle state of a translation job.
type JobStatus string

const (
	StatusNew         JobStatus = "new"
	StatusTranslating JobStatus = "translating"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
	StatusCanceled    JobStatus = "canceled"
	StatusAccepted    JobStatus = "accepted"
	StatusRejected    JobStatus = "rejected"
)

// jobStatuses is the canonical set accepted by status-filtered queries.
// Order matters: it is echoed back in validation messages.
var jobStatuses = []JobStatus{
	StatusNew,
	StatusTranslating,
	StatusCompleted,
	StatusFailed,
	StatusCanceled,
	StatusAccepted,
	StatusRejected,
}

// legacyStatuses maps names used by older API revisions to their current
// equivalent. They are not accepted, only suggested.
var legacyStatuses = map[string]JobStatus{
	"ready":       StatusCompleted,
	"in_progress": StatusTranslating,
	"processing":  StatusTranslating,
}

// JobStatuses returns a copy of the canonical status set.
func JobStatuses() []JobStatus {
	out := make([]JobStatus, len(jobStatuses))
	copy(out, jobStatuses)
	return out
}

// Valid reports whether s belongs to the canonical set.
func (s JobStatus) Valid() bool {
	for _, v := range jobStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether a job in status s will not change again without
// customer action.
func (s JobStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCanceled, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s JobStatus) String() string { return string(s) }
