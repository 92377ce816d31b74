package middleware

// Client-facing messages
const (
	ErrMsgAuthRequired       = "Authentication required"
	ErrMsgInvalidToken       = "Invalid or expired token"
	ErrMsgGenericServerError = "Something went wrong"
)

// Log messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
	LogMsgVerifyFailed  = "Bearer token verification failed"
	LogMsgEncodeFailed  = "Failed to encode auth error response"
)
