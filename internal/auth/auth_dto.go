package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	EmployeeID  string `json:"employee_id,omitempty"`
}

type RegisterAccountRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=admin staff"`
	EmployeeID string `json:"employee_id"`
}

type AccountResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Active     bool    `json:"active"`
}
