package controller

import (
	"errors"

	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondChainError maps an ownership-resolver failure to its HTTP status:
// a broken chain is 404, a foreign course is 403, anything else is 500.
func respondChainError(ctx *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, notFoundMsg)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
