package handlers

import (
	"furniture_warehouse/internal/usecase"
	"furniture_warehouse/pkg"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "invalid request body", http.StatusBadRequest)

// respondError writes err as {error: message}. Internal failures are logged
// with their cause and answered with a generic message.
func respondError(c *gin.Context, area string, err error) {
	appErr := pkg.FromError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] internal error method=%s path=%s err=%v", area, c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, area string, err error) {
	log.Printf("[%s][handler] invalid payload path=%s err=%v", area, c.Request.URL.Path, err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// parseID reads the :id path parameter. It writes the 400 response itself
// when the value is not a positive integer.
func parseID(c *gin.Context, area string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		respondError(c, area, usecase.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
