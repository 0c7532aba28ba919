package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ohio-order/middleware"
	"ohio-order/models"
	"ohio-order/services"
	"ohio-order/utils"
)

type CookieConfig struct {
	Name   string
	Secret string
	Expiry time.Duration
	Secure bool
}

type SessionController struct {
	sessions *services.SessionService
	cookie   CookieConfig
}

func NewSessionController(sessions *services.SessionService, cookie CookieConfig) *SessionController {
	return &SessionController{sessions: sessions, cookie: cookie}
}

func (ctrl *SessionController) ShowLogin(c *gin.Context) {
	if middleware.CurrentSession(c).Valid() {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

func (ctrl *SessionController) Login(c *gin.Context) {
	nomorMeja := c.PostForm("nomor_meja")

	sess, token, err := ctrl.open(c, nomorMeja)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":     "Login",
			"NomorMeja": nomorMeja,
			"Toasts":    []models.Toast{{Title: "Login Failed", Description: loginMessage(err), Variant: models.ToastDestructive}},
		})
		return
	}

	log.Printf("Session %s opened for table %s", sess.ID, sess.NomorMeja)
	ctrl.setCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/menu")
}

// @Summary Open table session
// @Description Resolve a table by its number and open a session for it
// @Tags Session
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Table number"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/session [post]
func (ctrl *SessionController) APILogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	sess, token, err := ctrl.open(c, req.NomorMeja)
	if err != nil {
		c.JSON(statusFor(err), models.ErrorResponse{Success: false, Message: loginMessage(err)})
		return
	}

	ctrl.setCookie(c, token)
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Session created successfully",
		Data:    models.LoginResponse{Token: token, Session: sess},
	})
}

func (ctrl *SessionController) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := ctrl.sessions.Logout(c.Request.Context(), sess); err != nil {
		log.Printf("Failed to drop draft for session %s: %v", sess.ID, err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.cookie.Name, "", -1, "/", "", ctrl.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (ctrl *SessionController) open(c *gin.Context, nomorMeja string) (models.Session, string, error) {
	sess, err := ctrl.sessions.Login(c.Request.Context(), nomorMeja)
	if err != nil {
		return models.Session{}, "", err
	}
	token, err := utils.GenerateSessionToken(sess, ctrl.cookie.Secret, ctrl.cookie.Expiry)
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		return models.Session{}, "", err
	}
	return sess, token, nil
}

func (ctrl *SessionController) setCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.cookie.Name, token, int(ctrl.cookie.Expiry.Seconds()), "/", "", ctrl.cookie.Secure, true)
}

func loginMessage(err error) string {
	if alreadyToasted(err) || err == services.ErrNomorRequired {
		return err.Error()
	}
	return "An unexpected error occurred"
}
