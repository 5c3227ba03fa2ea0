package contracts

// TokenStore holds the bearer token of the logged in patient.
type TokenStore interface {
	Token() (string, bool)
	SetToken(token string)
	Clear()
}
