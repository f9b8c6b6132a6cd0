package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	JTI    string `json:"jti"`
}
