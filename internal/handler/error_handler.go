package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"community-moderation-api/internal/response"
)

// errorCodeStatus maps service error codes to HTTP status codes.
// Unmapped codes fall through to 500.
var errorCodeStatus = map[string]int{
	response.ErrCodeNotFound:        http.StatusNotFound,
	response.ErrCodeAlreadyExists:   http.StatusConflict,
	response.ErrCodeDuplicateFlag:   http.StatusConflict,
	response.ErrCodeValidation:      http.StatusBadRequest,
	response.ErrCodeUnauthorized:    http.StatusUnauthorized,
	response.ErrCodeForbidden:       http.StatusForbidden,
	response.ErrCodeUserBanned:      http.StatusForbidden,
	response.ErrCodeContentRejected: http.StatusUnprocessableEntity,
}

// handleServiceError maps service layer errors to HTTP responses
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status, ok := errorCodeStatus[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	fmt.Printf("[ERROR] Unhandled error type: %T, value: %v\n", err, err)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}
