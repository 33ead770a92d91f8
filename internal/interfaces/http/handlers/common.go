// Package handlers contains the gin HTTP handlers for the analysis API.
// Handlers translate between JSON requests and the application services; no
// analysis logic lives here.
package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError maps an error to its HTTP status via the error-code table.
// Non-AppError values are masked as internal errors.
func respondError(c *gin.Context, err error) {
	var ae *errors.AppError
	if !stderrors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    errors.ErrCodeInternal.String(),
			Message: "internal server error",
		})
		return
	}
	c.JSON(errors.HTTPStatusForCode(ae.Code), ErrorResponse{
		Code:    ae.Code.String(),
		Message: ae.Message,
		Detail:  ae.Detail,
	})
}

// bindJSON decodes the request body, responding with a bad-request error on
// failure. The bool result tells the caller whether to proceed.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithCause(err))
		return false
	}
	return true
}

//Personal.AI order the ending
