package auth

import "crypto/subtle"

// Built-in identity of the mock server.
const (
	DefaultUsername = "admin"
	DefaultPassword = "test123"
	RoleAdmin       = "admin"
)

// User is the identity embedded in an issued token.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CredentialChecker verifies a username/password pair.
type CredentialChecker interface {
	// Check returns the matching user or ErrInvalidCredentials.
	Check(username, password string) (User, error)
}

// StaticCredentials accepts exactly one username/password pair.
type StaticCredentials struct {
	Username string
	Password string
	Role     string
}

var _ CredentialChecker = StaticCredentials{}

// DefaultCredentials returns the admin/test123 pair.
func DefaultCredentials() StaticCredentials {
	return StaticCredentials{Username: DefaultUsername, Password: DefaultPassword, Role: RoleAdmin}
}

// Check compares both fields in constant time.
func (c StaticCredentials) Check(username, password string) (User, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	if userOK&passOK != 1 {
		return User{}, ErrInvalidCredentials
	}
	return User{Username: c.Username, Role: c.Role}, nil
}
