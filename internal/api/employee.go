package api

import "employee-directory/internal/model"

// DateHiredLayout 為 date_hired 欄位的輸出格式
const DateHiredLayout = "2006-01-02 15:04:05"

// swagger:model api.Employee
type Employee struct {
	ID             int     `json:"id" example:"42"`
	Name           string  `json:"name" example:"John Doe"`
	Email          string  `json:"email" example:"john.doe@example.com"`
	Position       string  `json:"position" example:"Software Engineer"`
	Salary         float64 `json:"salary" example:"70000"`
	DateHired      string  `json:"date_hired" example:"2024-05-01 09:30:00"`
	ProfilePicture *string `json:"profile_picture" example:"john.jpg"`
}

// swagger:model api.SearchResponse
type SearchResponse struct {
	Employees []Employee `json:"employees"`
}

// NewEmployee 將資料庫模型轉為 API 輸出格式
func NewEmployee(m model.Employee) Employee {
	return Employee{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Position:       m.Position,
		Salary:         m.Salary,
		DateHired:      m.DateHired.Format(DateHiredLayout),
		ProfilePicture: m.ProfilePicture,
	}
}

func NewEmployees(ms []model.Employee) []Employee {
	out := make([]Employee, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewEmployee(m))
	}
	return out
}

// Picture 回傳大頭照檔名，沒有時為空字串
func (e Employee) Picture() string {
	if e.ProfilePicture == nil {
		return ""
	}
	return *e.ProfilePicture
}
