package httpserver

import (
	"net/http"

	"qkart/internal/domain"
	"github.com/gin-gonic/gin"
)

// genericErrorMessage is the only detail unexpected failures leak to clients.
const genericErrorMessage = "Something went wrong"

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// serverError logs the real cause and answers with the generic 500 body.
func (h *handlers) serverError(c *gin.Context, err error) {
	h.logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	fail(c, http.StatusInternalServerError, genericErrorMessage)
}

// failValidation maps a domain.ValidationError to a 400 with its message and
// reports whether err was one.
func failValidation(c *gin.Context, err error) bool {
	ve, ok := domain.AsValidation(err)
	if !ok {
		return false
	}
	fail(c, http.StatusBadRequest, ve.Message)
	return true
}
