package jwtx

// Signer is anything that can sign member tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}
