package models

// ValidationError is a failure caught before any upstream request is sent.
// Reason is the human-readable message shown to the operator.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UpstreamError is a business failure reported by the commerce API through
// its `success:false` envelope. It is recoverable and never fatal.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
