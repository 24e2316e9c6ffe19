package api

// swagger:model api.UpdateEmployeeRequest
type UpdateEmployeeRequest struct {
	Name     string `form:"name" validate:"omitempty,max=100" example:"Jane Doe"`
	Email    string `form:"email" validate:"omitempty,max=120" example:"jane.doe@example.com"`
	Position string `form:"position" validate:"omitempty,max=100" example:"Senior Software Engineer"`
	Salary   string `form:"salary" validate:"omitempty,numeric" example:"80000"`
}
