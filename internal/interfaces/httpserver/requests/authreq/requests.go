package authreq

// Credentials is the body of both the register and the login endpoints.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
