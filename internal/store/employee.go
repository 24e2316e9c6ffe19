package store

import (
	"context"
	"fmt"
	"strings"

	"employee-directory/internal/database"
	"employee-directory/internal/model"
)

const employeeColumns = `id, name, email, position, salary, date_hired, profile_picture`

// likeReplacer 跳脫 LIKE 的萬用字元，讓搜尋字串只做字面比對
var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanEmployee(row interface{ Scan(dest ...any) error }) (*model.Employee, error) {
	e := &model.Employee{}
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Position,
		&e.Salary,
		&e.DateHired,
		&e.ProfilePicture,
	); err != nil {
		return nil, err
	}
	return e, nil
}

// SearchEmployees 以名稱、Email 或職位做不分大小寫的子字串搜尋；空字串回傳全部
func SearchEmployees(ctx context.Context, db database.DB, query string) ([]model.Employee, error) {
	query = strings.TrimSpace(query)
	rows, err := db.Query(ctx,
		`SELECT `+employeeColumns+`
		 FROM employees
		 WHERE $1 = ''
		    OR name ILIKE $2
		    OR email ILIKE $2
		    OR position ILIKE $2
		 ORDER BY id`,
		query,
		"%"+likeReplacer.Replace(query)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("SearchEmployees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("SearchEmployees: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchEmployees: %w", err)
	}
	return employees, nil
}

func GetEmployeeByID(ctx context.Context, db database.DB, id int) (*model.Employee, error) {
	row := db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`,
		id,
	)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, fmt.Errorf("GetEmployeeByID: %w", err)
	}
	return e, nil
}

func GetEmployeeByEmail(ctx context.Context, db database.DB, email string) (*model.Employee, error) {
	row := db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = $1`,
		email,
	)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, fmt.Errorf("GetEmployeeByEmail: %w", err)
	}
	return e, nil
}

func CreateEmployee(ctx context.Context, db database.DB, e *model.Employee) (*model.Employee, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO employees (name, email, position, salary, profile_picture)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, date_hired`,
		e.Name,
		e.Email,
		e.Position,
		e.Salary,
		e.ProfilePicture,
	)
	if err := row.Scan(&e.ID, &e.DateHired); err != nil {
		return nil, fmt.Errorf("CreateEmployee: %w", err)
	}
	return e, nil
}

func UpdateEmployee(ctx context.Context, db database.DB, e *model.Employee) error {
	_, err := db.Exec(ctx,
		`UPDATE employees
		 SET name = $1, email = $2, position = $3, salary = $4, profile_picture = $5
		 WHERE id = $6`,
		e.Name,
		e.Email,
		e.Position,
		e.Salary,
		e.ProfilePicture,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateEmployee: %w", err)
	}
	return nil
}

// DeleteEmployee 回傳是否真的刪除了一筆資料
func DeleteEmployee(ctx context.Context, db database.DB, id int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM employees WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteEmployee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
