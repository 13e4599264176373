package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type ResultController struct {
	resultSvc service.ResultService
}

func NewResultController(resultSvc service.ResultService) *ResultController {
	return &ResultController{resultSvc: resultSvc}
}

// List godoc
// @Summary List test results
// @Description Admins see every result, other users only their own.
// @Tags Results
// @Security BearerAuth
// @Success 200 {array} dto.ResultResponseDTO
// @Router /user-test-results [get]
func (ctrl *ResultController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	results, err := ctrl.resultSvc.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, results, "")
}

// Get godoc
// @Summary Get one test result
// @Tags Results
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.ResultResponseDTO
// @Router /user-test-results/{id} [get]
func (ctrl *ResultController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := ctrl.resultSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, result, "")
}

// Create godoc
// @Summary Record a test result
// @Description Admin only. Records a participant's score and answer file for an existing test.
// @Tags Results
// @Security BearerAuth
// @Accept multipart/form-data
// @Param test_id formData int true "Test"
// @Param file formData file true "Answer file"
// @Success 201 {object} dto.ResultResponseDTO
// @Router /user-test-results [post]
func (ctrl *ResultController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ResultCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	result, err := ctrl.resultSvc.Create(actor, req, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, result, "Result recorded.")
}

// Update godoc
// @Summary Update a test result
// @Description Admin only. Used to set the score after review.
// @Tags Results
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Result ID"
// @Success 200 {object} dto.ResultResponseDTO
// @Router /user-test-results/{id} [put]
func (ctrl *ResultController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ResultUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	result, err := ctrl.resultSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, result, "Result updated.")
}

// Delete godoc
// @Summary Delete a test result
// @Description Admin only.
// @Tags Results
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} map[string]interface{}
// @Router /user-test-results/{id} [delete]
func (ctrl *ResultController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.resultSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Result deleted.")
}

// Download godoc
// @Summary Download a result answer file
// @Tags Results
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {file} binary
// @Router /user-test-results/{id}/download [get]
func (ctrl *ResultController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.resultSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
