package handler

import (
	"errors"
	"net/http"

	"forum_api/internal/pkg"

	"github.com/gin-gonic/gin"
)

// writeErr maps domain errors onto status codes. Anything unrecognized is an
// internal fault and leaks nothing.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkg.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrDuplicateIdentity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrBadCredentials),
		errors.Is(err, pkg.ErrRefreshExpired),
		errors.Is(err, pkg.ErrRefreshInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	case errors.Is(err, pkg.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
