package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emeka-dev/catalog-backend/internal/apperrors"
	"github.com/emeka-dev/catalog-backend/utils"
)

// respondError translates the error taxonomy into HTTP responses:
// validation and duplicate failures are 400s, missing entities 404s, and
// everything else a 500 carrying fallback as its message. Internal detail
// is only exposed in development mode.
func respondError(c *gin.Context, err error, fallback string, dev bool) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsDuplicate(err):
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error()))
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, utils.ErrorResponse(err.Error()))
	default:
		logrus.WithError(err).Error(fallback)
		if dev {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponseWithDetail(fallback, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse(fallback))
	}
}
