package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/validation"
)

// respondBindingError maps a request-binding failure to a 400 response,
// with field-level violations when the validator produced them.
func respondBindingError(c *gin.Context, err error) {
	if violations := validation.ViolationsFrom(err); violations != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", violations)
		return
	}
	apierrors.BadRequest(c, "Invalid request body")
}

// parseIDParam parses a positive integer path parameter. On failure it
// writes a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}
