package common

const (
	// RequestIDHeaderName carries a per-request identifier from the client
	// so both sides can correlate their log lines.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultCareerGoal is assumed when a user registers without choosing one.
	DefaultCareerGoal = "Full Stack Developer"
)
