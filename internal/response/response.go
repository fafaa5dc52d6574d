package response

import "github.com/gin-gonic/gin"

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Операция успешно выполнена"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: COLUMN_NOT_FOUND
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Колонка не найдена
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: column "Class" not found (available: Name, Section)
	Details string `json:"details,omitempty"`
}

// Коды ошибок API.
const (
	CodeSectionNotFound   = "SECTION_NOT_FOUND"
	CodeSectionLoadFailed = "SECTION_LOAD_FAILED"
	CodeInvalidDay        = "INVALID_DAY"
	CodeInvalidTime       = "INVALID_TIME"
	CodeNoFile            = "NO_FILE"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeReadFailed        = "READ_FAILED"
	CodeTableNotFound     = "TABLE_NOT_FOUND"
	CodeColumnRequired    = "COLUMN_REQUIRED"
	CodeColumnNotFound    = "COLUMN_NOT_FOUND"
	CodeKeyRequired       = "KEY_REQUIRED"
	CodeGroupNotFound     = "GROUP_NOT_FOUND"
	CodeStoreError        = "STORE_ERROR"
	CodeExportFailed      = "EXPORT_FAILED"
)

// Error прерывает обработку запроса и отдаёт ErrorResponse.
func Error(c *gin.Context, status int, code, message string, err error) {
	resp := ErrorResponse{Code: code, Message: message}
	if err != nil {
		resp.Details = err.Error()
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}
