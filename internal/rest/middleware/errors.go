package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/poolquote/poolquote/internal/errors"
)

// ErrorHandler converts errors attached via c.Error into the standard error
// response with the HTTP status mapped from the error code.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
	}
}
