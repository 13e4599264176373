package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type AuthController struct {
	authSvc service.AuthService
}

func NewAuthController(authSvc service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an unverified Participant account and emails a verification code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.RegisterDTO true "Registration payload"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 409 {object} map[string]interface{}
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user, err := ctrl.authSvc.Register(req, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, user, "Account created. Check your email for the verification code.")
}

// VerifyEmail godoc
// @Summary Verify an email address
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.VerifyEmailDTO true "Verification payload"
// @Success 200 {object} map[string]interface{}
// @Router /verify-email [post]
func (ctrl *AuthController) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := ctrl.authSvc.VerifyEmail(req, time.Now()); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Email verified.")
}

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	token, err := ctrl.authSvc.Login(req, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, token, "Logged in.")
}

// Logout godoc
// @Summary Log out
// @Description Stateless tokens: the client discards the token.
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	respondOK(c, nil, "Logged out.")
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} dto.UserResponseDTO
// @Router /me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := ctrl.authSvc.Me(actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user, "")
}
