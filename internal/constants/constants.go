package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "wedplan_session"

	// ContextKeyUserID is the key under which the authenticated user's ID
	// is stored in both the session and the gin context.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)
