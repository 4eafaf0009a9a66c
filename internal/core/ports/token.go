package ports

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// RequestMeta carries the transport-level details recorded on audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// TokenIssuer signs and verifies bearer tokens. Verify collapses every
// failure mode (missing, malformed, expired, bad signature) into the same
// ErrInvalidCredentials-class outcome so callers cannot distinguish them.
type TokenIssuer interface {
	Issue(userID, role, username string) (string, error)
	Verify(token string) (Claims, error)
}
