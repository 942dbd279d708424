package domain

// Namespace names an independent token pool. Tokens issued in one namespace never
// validate in another.
type Namespace string

const (
	// NamespaceSession backs cookie sessions (session_token cookie).
	NamespaceSession Namespace = "session"
	// NamespaceToken backs bearer-style tokens returned in the response body.
	NamespaceToken Namespace = "token"
)

// Valid reports whether n is one of the known namespaces.
func (n Namespace) Valid() bool {
	switch n {
	case NamespaceSession, NamespaceToken:
		return true
	default:
		return false
	}
}

func (n Namespace) String() string { return string(n) }
