package access

// Log messages
const (
	LogMsgAccessDenied   = "Access denied"
	LogMsgAccessResolved = "Access resolved"
)

// Public write policy names accepted by ParsePublicWritePolicy
const (
	PolicyNameAuthenticated = "authenticated"
	PolicyNameGrantOnly     = "grant_only"
)
