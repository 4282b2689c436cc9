package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"connectfit-backend/models"
)

type loginRequest struct {
	Passcode string `json:"passcode" form:"passcode"`
}

// Login switches the session to ADM when the passcode matches.
func (ctrl *Controller) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, token, err := ctrl.Gate.Login(ctrl.currentSession(c), req.Passcode)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta", "session": session})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "session": session, "token": token})
}

// Logout always returns the client session. Tokens are stateless, so the
// caller discards its own.
func (ctrl *Controller) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": ctrl.currentSession(c).Logout()})
}

// GetSession reports the role carried by the request's token.
func (ctrl *Controller) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": ctrl.currentSession(c)})
}

// Navigate checks whether the caller may open a view.
func (ctrl *Controller) Navigate(c *gin.Context) {
	view, ok := models.ParseView(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown view"})
		return
	}
	session, allowed := ctrl.currentSession(c).Navigate(view)
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required", "session": session})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// RequireAdmin rejects requests without a valid admin bearer token.
func (ctrl *Controller) RequireAdmin(c *gin.Context) {
	if ctrl.currentSession(c).Role != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}

func (ctrl *Controller) currentSession(c *gin.Context) models.Session {
	token := bearerToken(c)
	if token == "" || ctrl.Gate.Verify(token) != nil {
		return models.NewSession()
	}
	return models.Session{Role: models.RoleAdmin, View: models.ViewDashboard}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
