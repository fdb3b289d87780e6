package user

import "crypto/subtle"

// AdminCredential holds the single admin username and a bcrypt hash of its
// password. The plaintext is discarded once hashed.
type AdminCredential struct {
	username     string
	passwordHash string
}

func NewAdminCredential(username, password string) (*AdminCredential, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AdminCredential{username: username, passwordHash: hash}, nil
}

func (c *AdminCredential) Verify(username, password string) bool {
	if c == nil {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := CheckPasswordHash(password, c.passwordHash)
	return userOK && passOK
}
