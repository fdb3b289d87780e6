package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// account is the registry record; the hash never leaves this package.
type account struct {
	User
	PasswordHash string `json:"password_hash"`
}

// AdminUser is the identity every successful admin login resolves to.
func AdminUser() User {
	return User{
		ID:    "admin",
		Email: "admin@ayushyaa.com",
		Name:  "Admin",
		Role:  RoleAdmin,
	}
}
