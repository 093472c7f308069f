package contextkeys

// RequestId keys the per-request id stored on the request context.
type RequestId struct{}
