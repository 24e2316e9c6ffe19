// File: cmd/service/main.go
// @title        Employee Directory API
// @version      1.0
// @description  員工目錄：搜尋、新增、編輯、刪除員工，以及 live 頁面 session
// @host         localhost:8080
// @BasePath     /
package main

import (
	"log"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
