package transport

// Credentials is the static login/token pair sent with every request.
type Credentials struct {
	Login string
	Token string
}

// CredentialProvider supplies credentials to a Transport. Implementations
// that read local configuration live outside this package.
type CredentialProvider interface {
	Credentials() (Credentials, error)
}

// Credentials makes a plain pair usable as a CredentialProvider.
func (c Credentials) Credentials() (Credentials, error) {
	return c, nil
}
