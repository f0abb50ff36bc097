package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/utils"
)

// Login godoc
// @Summary      Exchange the admin password for a short-lived token
// @Description  The editor UI keeps the token in session storage instead of the raw password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body  models.LoginRequest  true  "admin password"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/login [post]
func Login(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		if !utils.CheckPassword(req.Password, cfg.Password, cfg.PasswordHash) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}
		token, expiresAt, err := utils.GenerateAdminJWT(cfg.signingSecret())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, models.LoginResponse{Token: token, ExpiresAt: expiresAt})
	}
}
