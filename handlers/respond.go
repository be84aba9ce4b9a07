package handlers

import (
	"errors"
	"net/http"

	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the HTTP taxonomy. Internal
// failures are logged with detail but surfaced generically.
func respondError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	var ae *utils.AppError
	errors.As(err, &ae)
	c.JSON(status, gin.H{"error": ae.Message, "code": ae.Code})
}
