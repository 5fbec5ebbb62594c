package model

// Role separates the two account kinds. Instructors author courses and
// content; students consume them and submit work.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// User is created at sign-up and immutable afterwards. Credentials are
// compared as plain opaque values; this is a single-user dashboard, not an
// authentication system.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type ContextKey string

const (
	UserKey ContextKey = "currentUser"
)

// RegisterRequest is the sign-up request body.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	Role     Role   `json:"role" validate:"required,oneof=student instructor"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by register and login. The token authenticates
// subsequent requests; the embedded user never exposes the password.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
