package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type UserController struct {
	userSvc service.UserService
}

func NewUserController(userSvc service.UserService) *UserController {
	return &UserController{userSvc: userSvc}
}

// List godoc
// @Summary List users
// @Description Admin only.
// @Tags Users
// @Security BearerAuth
// @Success 200 {array} dto.UserResponseDTO
// @Router /participants [get]
func (ctrl *UserController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	users, err := ctrl.userSvc.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, users, "")
}

// Get godoc
// @Summary Get one user
// @Description Admins can read anyone, other users only themselves.
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponseDTO
// @Router /participants/{id} [get]
func (ctrl *UserController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := ctrl.userSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user, "")
}

// Update godoc
// @Summary Update a user
// @Description Admins can edit anyone including the role, other users only their own profile.
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponseDTO
// @Router /participants/{id} [put]
func (ctrl *UserController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UserUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user, err := ctrl.userSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user, "User updated.")
}

// Delete godoc
// @Summary Delete a user
// @Description Admin only.
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /participants/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.userSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "User deleted.")
}

// AdminDashboard godoc
// @Summary Admin dashboard
// @Description Platform-wide counts and submission statistics. Admin only.
// @Tags Dashboards
// @Security BearerAuth
// @Success 200 {object} dto.AdminDashboardDTO
// @Router /dashboard/admin [get]
func (ctrl *UserController) AdminDashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	dash, err := ctrl.userSvc.AdminDashboard(actor, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, dash, "")
}

// ParticipantDashboard godoc
// @Summary Participant dashboard
// @Description The caller's own submission statistics.
// @Tags Dashboards
// @Security BearerAuth
// @Success 200 {object} dto.ParticipantDashboardDTO
// @Router /dashboard/participant [get]
func (ctrl *UserController) ParticipantDashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	dash, err := ctrl.userSvc.ParticipantDashboard(actor, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, dash, "")
}
