package httpHandler

import (
	"net/http"

	"blog-server/schemas"
	"blog-server/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// bindID parses the :id path segment, answering 422 when it is not a positive integer.
func bindID(c *gin.Context) (uint, bool) {
	var p schemas.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid path parameter",
			"details": validation.ToDetails(err),
		})
		return 0, false
	}
	return p.ID, true
}

// bindBody decodes and validates the JSON body, answering 422 on failure.
func bindBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": validation.ToDetails(err),
		})
		return false
	}
	return true
}

func internalError(c *gin.Context, log *logrus.Logger, msg string, err error) {
	log.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	}).WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": msg,
	})
}
