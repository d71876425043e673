package users

const (
	RoleUser  = "user"
	RoleJudge = "judge"
)

// User is the authenticated profile the session layer carries around.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role,omitempty"`
}
