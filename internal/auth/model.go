package auth

// User is the account entity. Restaurant owners register themselves,
// admin accounts are provisioned by hand.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
)
