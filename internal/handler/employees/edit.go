package employees

import (
	"net/http"

	"employee-directory/internal/api"
	"employee-directory/internal/apperror"
	"employee-directory/internal/flash"
	"employee-directory/internal/service"
	"employee-directory/internal/upload"
	"employee-directory/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const employeeNotFound = "Employee not found!"

// EditFormHandler 顯示編輯員工表單
// @Summary     Edit employee form
// @Tags        pages
// @Produce     html
// @Param       id path int true "員工 ID"
// @Success     200 {string} string "HTML page"
// @Success     303 "員工不存在時導回首頁"
// @Router      /edit/{id} [get]
func EditFormHandler(dir service.Directory, flashes *flash.Store, log *logrus.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return failure(c, flashes, log, notFound(), employeeNotFound)
		}
		e, err := dir.Get(c.Request().Context(), id)
		if err != nil {
			if apperror.GetCode(err) == apperror.CodeNotFound {
				err = notFound()
			}
			return failure(c, flashes, log, err, "An unexpected error occurred while loading the employee.")
		}
		return c.Render(http.StatusOK, web.EditPage, web.EditData{Employee: api.NewEmployee(*e)})
	}
}

// UpdateEmployeeHandler 更新員工；空白欄位維持原值
// @Summary     Update an employee
// @Description 只更新有填寫的欄位；上傳新大頭照時取代舊的
// @Tags        employees
// @Accept      multipart/form-data
// @Param       id              path     int    true  "員工 ID"
// @Param       name            formData string false "姓名"
// @Param       email           formData string false "Email"
// @Param       position        formData string false "職稱"
// @Param       salary          formData number false "薪資"
// @Param       profile_picture formData file   false "大頭照 (png/jpg/jpeg)"
// @Success     303
// @Router      /edit/{id} [post]
func UpdateEmployeeHandler(dir service.Directory, st upload.Storage, flashes *flash.Store, log *logrus.Entry) echo.HandlerFunc {
	const fallback = "An unexpected error occurred while updating the employee."
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return failure(c, flashes, log, notFound(), fallback)
		}
		var req api.UpdateEmployeeRequest
		if err := c.Bind(&req); err != nil {
			return failure(c, flashes, log, invalidForm(), fallback)
		}
		if err := c.Validate(&req); err != nil {
			return failure(c, flashes, log, invalidForm(), fallback)
		}

		picture, err := storePicture(c, st)
		if err != nil {
			return failure(c, flashes, log, err, fallback)
		}

		_, err = dir.Update(c.Request().Context(), id, service.UpdateEmployeeInput{
			Name:           req.Name,
			Email:          req.Email,
			Position:       req.Position,
			Salary:         req.Salary,
			ProfilePicture: picture,
		})
		if err != nil {
			discardPicture(c, st, log, picture)
			return failure(c, flashes, log, err, fallback)
		}
		if err := flashes.Add(c, flash.Success, "Employee updated successfully!"); err != nil {
			return err
		}
		return redirectHome(c)
	}
}

func notFound() error {
	return apperror.New(apperror.CodeNotFound, employeeNotFound)
}

func invalidForm() error {
	return apperror.New(apperror.CodeValidation, invalidFormMessage)
}
