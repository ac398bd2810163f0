package client

import (
	"github.com/unbabel/tapi/client/internal/api"
	"github.com/unbabel/tapi/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	TranslationRequest = types.TranslationRequest
	Options            = types.Options

	// Responses
	Response = types.Response

	// Domain
	JobStatus = types.JobStatus

	// Transport is implemented by the transport package and by test doubles.
	Transport = types.Transport
)

// Job statuses accepted by GetJobsWithStatus.
const (
	StatusNew         = types.StatusNew
	StatusTranslating = types.StatusTranslating
	StatusCompleted   = types.StatusCompleted
	StatusFailed      = types.StatusFailed
	StatusCanceled    = types.StatusCanceled
	StatusAccepted    = types.StatusAccepted
	StatusRejected    = types.StatusRejected
)

// JobStatuses returns the canonical status set.
func JobStatuses() []JobStatus { return types.JobStatuses() }

// API roots selected by Config.Sandbox.
const (
	ProductionURL = api.ProductionURL
	SandboxURL    = api.SandboxURL
)
