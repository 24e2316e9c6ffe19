package employees

import (
	"net/http"

	"employee-directory/internal/api"
	"employee-directory/internal/flash"
	"employee-directory/internal/service"
	"employee-directory/internal/upload"
	"employee-directory/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AddFormHandler 顯示新增員工表單
// @Summary     Add employee form
// @Tags        pages
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /add [get]
func AddFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, web.AddPage, nil)
	}
}

// CreateEmployeeHandler 新增員工
// @Summary     Create an employee
// @Description 接收表單與可選的大頭照，完成後以 flash 訊息導回首頁
// @Tags        employees
// @Accept      multipart/form-data
// @Param       name            formData string true  "姓名"
// @Param       email           formData string true  "Email"
// @Param       position        formData string true  "職稱"
// @Param       salary          formData number true  "薪資"
// @Param       profile_picture formData file   false "大頭照 (png/jpg/jpeg)"
// @Success     303
// @Router      /add [post]
func CreateEmployeeHandler(dir service.Directory, st upload.Storage, flashes *flash.Store, log *logrus.Entry) echo.HandlerFunc {
	const fallback = "An unexpected error occurred while creating the employee."
	return func(c echo.Context) error {
		var req api.CreateEmployeeRequest
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

		_, err = dir.Create(c.Request().Context(), service.CreateEmployeeInput{
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
		if err := flashes.Add(c, flash.Success, "Employee created successfully!"); err != nil {
			return err
		}
		return redirectHome(c)
	}
}

// storePicture 儲存上傳的大頭照；未上傳或副檔名不符時回傳 nil
func storePicture(c echo.Context, st upload.Storage) (*string, error) {
	fh, err := profilePicture(c)
	if err != nil {
		return nil, err
	}
	name, err := saveUpload(c.Request().Context(), st, fh)
	if err != nil || name == "" {
		return nil, err
	}
	return &name, nil
}
