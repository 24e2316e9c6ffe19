package api

// swagger:model api.CreateEmployeeRequest
type CreateEmployeeRequest struct {
	Name     string `form:"name" validate:"required,max=100" example:"John Doe"`
	Email    string `form:"email" validate:"required,max=120" example:"john.doe@example.com"`
	Position string `form:"position" validate:"required,max=100" example:"Software Engineer"`
	Salary   string `form:"salary" validate:"required,numeric" example:"70000"`
}
