package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wedplan/marketplace-api/internal/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Register()
	os.Exit(m.Run())
}
