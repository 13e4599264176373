package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type ProjectController struct {
	projectSvc service.ProjectService
}

func NewProjectController(projectSvc service.ProjectService) *ProjectController {
	return &ProjectController{projectSvc: projectSvc}
}

// List godoc
// @Summary List projects with statistics
// @Description Admins and Mentors see every project, Participants only their own.
// @Tags Projects
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProjectListDTO
// @Router /projects [get]
func (ctrl *ProjectController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := ctrl.projectSvc.List(actor, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, list, "")
}

// Get godoc
// @Summary Get one project
// @Tags Projects
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Router /projects/{id} [get]
func (ctrl *ProjectController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	project, err := ctrl.projectSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, project, "")
}

// Create godoc
// @Summary Submit a new project
// @Tags Projects
// @Security BearerAuth
// @Accept multipart/form-data
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "Project file"
// @Success 201 {object} dto.ProjectResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Router /projects [post]
func (ctrl *ProjectController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.SubmissionCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	project, err := ctrl.projectSvc.Create(actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, project, "Project submitted.")
}

// Update godoc
// @Summary Update a project
// @Description Admins may change any field including status and feedback; owners only title, description and file, and only while the project is Submitted.
// @Tags Projects
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Router /projects/{id} [put]
func (ctrl *ProjectController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SubmissionUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	project, err := ctrl.projectSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, project, "Project updated.")
}

// Delete godoc
// @Summary Delete a project
// @Tags Projects
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func (ctrl *ProjectController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.projectSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Project deleted.")
}

// Download godoc
// @Summary Download a project file
// @Tags Projects
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {file} binary
// @Router /projects/{id}/download [get]
func (ctrl *ProjectController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.projectSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
