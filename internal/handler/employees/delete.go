package employees

import (
	"employee-directory/internal/flash"
	"employee-directory/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// DeleteEmployeeHandler 刪除員工後以 flash 訊息導回首頁
// @Summary     Delete an employee
// @Description 由刪除確認對話框送出的表單呼叫 (整頁導向)
// @Tags        employees
// @Param       id path int true "員工 ID"
// @Success     303
// @Router      /delete/{id} [post]
func DeleteEmployeeHandler(dir service.Directory, flashes *flash.Store, log *logrus.Entry) echo.HandlerFunc {
	const fallback = "An unexpected error occurred while deleting the employee."
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return failure(c, flashes, log, notFound(), fallback)
		}
		if err := dir.Delete(c.Request().Context(), id); err != nil {
			return failure(c, flashes, log, err, fallback)
		}
		if err := flashes.Add(c, flash.Success, "Employee deleted successfully!"); err != nil {
			return err
		}
		return redirectHome(c)
	}
}
