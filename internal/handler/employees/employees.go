// Package employees serves the directory pages and the search/add/edit/delete endpoints.
package employees

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"employee-directory/internal/apperror"
	"employee-directory/internal/flash"
	"employee-directory/internal/upload"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var (
	saveUpload   = upload.Save
	removeUpload = func(ctx context.Context, st upload.Storage, name string) error {
		return st.Remove(ctx, name)
	}
)

// 表單驗證失敗時的提示
const invalidFormMessage = "Please provide a name, a valid email, a position and a numeric salary"

func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

// profilePicture 回傳上傳檔案；未附檔時為 nil
func profilePicture(c echo.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("profile_picture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}

// failure queues an error flash: business errors verbatim, anything else as fallback.
func failure(c echo.Context, flashes *flash.Store, log *logrus.Entry, err error, fallback string) error {
	if apperror.GetCode(err) == apperror.CodeInternal {
		log.WithError(err).Error(fallback)
	}
	if ferr := flashes.Add(c, flash.Error, apperror.UserMessage(err, fallback)); ferr != nil {
		return ferr
	}
	return redirectHome(c)
}

// discardPicture 刪除已存下但沒寫進資料庫的大頭照
func discardPicture(c echo.Context, st upload.Storage, log *logrus.Entry, picture *string) {
	if picture == nil {
		return
	}
	if err := removeUpload(c.Request().Context(), st, *picture); err != nil {
		log.WithError(err).WithField("file", *picture).Warn("remove orphaned upload")
	}
}
