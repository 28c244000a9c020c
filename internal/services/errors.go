package services

// Typed errors surfaced by the service layer. Handlers map these to
// HTTP status codes; nothing here ever crashes the request process.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

// AcquisitionError reports a failed content fetch or parse. The
// original source identifier travels with it so the handler can build
// the structured failure object.
type AcquisitionError struct {
	Source  string
	Message string
}

func (e *AcquisitionError) Error() string { return e.Message }

// ProviderError reports a failed generative-AI call.
type ProviderError struct{ Message string }

func (e *ProviderError) Error() string { return e.Message }
