// File: internal/model/employee.go
package model

import "time"

type Employee struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Position       string    `db:"position" json:"position"`
	Salary         float64   `db:"salary" json:"salary"`
	DateHired      time.Time `db:"date_hired" json:"date_hired"`
	ProfilePicture *string   `db:"profile_picture" json:"profile_picture,omitempty"`
}
