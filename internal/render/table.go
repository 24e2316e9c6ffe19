// Package render turns employee records into the directory table markup.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"employee-directory/internal/api"
	"employee-directory/internal/page"

	"github.com/shopspring/decimal"
)

// EmptyMessage is shown instead of a table when a search returns nothing.
const EmptyMessage = "No employees found. Please add new employees."

// Columns of the header row, in order.
var Columns = []string{"ID", "Name", "Email", "Position", "Salary", "Date Hired", "Profile Picture", "Actions"}

//go:embed templates/*.html
var templatesFS embed.FS

var tableTmpl = template.Must(template.New("table.html").Funcs(template.FuncMap{
	"salary":     FormatSalary,
	"editURL":    EditURL,
	"deleteURL":  DeleteURL,
	"pictureURL": PictureURL,
}).ParseFS(templatesFS, "templates/table.html"))

type tableData struct {
	Columns   []string
	Employees []api.Employee
	Empty     string
}

// FormatSalary renders an amount with a dollar sign and exactly two decimals.
// Rounding works on the float's exact binary value, half away from zero, so
// 1.005 (stored as 1.00499...) shows as $1.00 the same way a browser's
// toFixed(2) does.
func FormatSalary(amount float64) string {
	return "$" + decimal.NewFromFloatWithExponent(amount, -2).StringFixed(2)
}

func EditURL(id int) string {
	return "/edit/" + strconv.Itoa(id)
}

func DeleteURL(id int) string {
	return "/delete/" + strconv.Itoa(id)
}

func PictureURL(file string) string {
	return "/static/uploads/" + file
}

// Render builds the container contents for employees. Every field goes through
// html/template escaping.
func Render(employees []api.Employee) (string, error) {
	var buf bytes.Buffer
	err := tableTmpl.Execute(&buf, tableData{
		Columns:   Columns,
		Employees: employees,
		Empty:     EmptyMessage,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInto replaces the table container of doc with the rendered list.
func RenderInto(doc *page.Document, employees []api.Employee) error {
	html, err := Render(employees)
	if err != nil {
		return err
	}
	return doc.ReplaceContents(page.TableContainer, html)
}
