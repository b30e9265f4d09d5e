package utils

type contextKey string

// RequestIDKey carries the request id through the handler chain.
const RequestIDKey = contextKey("requestID")
