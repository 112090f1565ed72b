package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Position string `json:"position"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Position string `json:"position"`
	Active   *bool  `json:"active"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position,omitempty"`
	Active   bool   `json:"active"`
}
