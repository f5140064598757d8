package auth

type LoginRequest struct {
	OrgSlug  string `json:"org_slug" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type MeResponse struct {
	UserID      string   `json:"user_id"`
	OrgID       string   `json:"org_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	EmployeeID  *string  `json:"employee_id,omitempty"`
}

// RequestMeta carries transport details handlers forward to the audit trail.
type RequestMeta struct {
	IP        string
	UserAgent string
}
