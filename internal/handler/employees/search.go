package employees

import (
	"net/http"

	"employee-directory/internal/api"
	"employee-directory/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SearchHandler 依關鍵字搜尋員工
// @Summary     Search employees
// @Description 名稱、Email 或職稱不分大小寫的部分比對；空字串回傳全部。非 XHR 請求會被導回首頁
// @Tags        employees
// @Produce     json
// @Param       q                query  string false "搜尋字串"
// @Param       X-Requested-With header string true  "XMLHttpRequest"
// @Success     200 {object} api.SearchResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /search [get]
func SearchHandler(dir service.Directory, log *logrus.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		employees, err := dir.Search(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			log.WithError(err).Error("search employees")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "search failed"})
		}
		return c.JSON(http.StatusOK, api.SearchResponse{Employees: api.NewEmployees(employees)})
	}
}
