package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type ResourceController struct {
	resourceSvc service.ResourceService
}

func NewResourceController(resourceSvc service.ResourceService) *ResourceController {
	return &ResourceController{resourceSvc: resourceSvc}
}

// List godoc
// @Summary List resources
// @Description Returns all resources with aggregate download statistics.
// @Tags Resources
// @Security BearerAuth
// @Success 200 {object} dto.ResourceListDTO
// @Router /resources [get]
func (ctrl *ResourceController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := ctrl.resourceSvc.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, list, "")
}

// Get godoc
// @Summary Get one resource
// @Tags Resources
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.ResourceResponseDTO
// @Router /resources/{id} [get]
func (ctrl *ResourceController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	resource, err := ctrl.resourceSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, resource, "")
}

// Create godoc
// @Summary Create a resource
// @Description Admin and Mentor only.
// @Tags Resources
// @Security BearerAuth
// @Accept multipart/form-data
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "Resource file"
// @Success 201 {object} dto.ResourceResponseDTO
// @Router /resources [post]
func (ctrl *ResourceController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ResourceCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	resource, err := ctrl.resourceSvc.Create(actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, resource, "Resource created.")
}

// Update godoc
// @Summary Update a resource
// @Description Admin and Mentor only.
// @Tags Resources
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.ResourceResponseDTO
// @Router /resources/{id} [put]
func (ctrl *ResourceController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ResourceUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	resource, err := ctrl.resourceSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, resource, "Resource updated.")
}

// Delete godoc
// @Summary Delete a resource
// @Description Admin only.
// @Tags Resources
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} map[string]interface{}
// @Router /resources/{id} [delete]
func (ctrl *ResourceController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.resourceSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Resource deleted.")
}

// Download godoc
// @Summary Download a resource file
// @Description Any authenticated user. Increments the resource download counter.
// @Tags Resources
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {file} binary
// @Router /resources/{id}/download [get]
func (ctrl *ResourceController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.resourceSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
