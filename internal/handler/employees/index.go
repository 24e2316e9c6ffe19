package employees

import (
	"html/template"
	"net/http"

	"employee-directory/internal/flash"
	"employee-directory/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// IndexHandler 顯示員工目錄頁面並帶出待顯示的 flash 訊息
// @Summary     Directory page
// @Description 回傳目錄頁面；佇列中的 flash 訊息嵌入 #flash-messages 後清除
// @Tags        pages
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [get]
func IndexHandler(flashes *flash.Store, log *logrus.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		msgs, err := flashes.Pop(c)
		if err != nil {
			log.WithError(err).Warn("discarding unreadable flash cookie")
		}
		payload, err := flash.Encode(msgs)
		if err != nil {
			return err
		}
		// json.Marshal escapes <, > and &, so the payload cannot close the script element.
		return c.Render(http.StatusOK, web.IndexPage, web.IndexData{Flash: template.JS(payload)})
	}
}
