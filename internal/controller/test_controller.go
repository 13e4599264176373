package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type TestController struct {
	testSvc service.TestService
}

func NewTestController(testSvc service.TestService) *TestController {
	return &TestController{testSvc: testSvc}
}

// List godoc
// @Summary List tests
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TestResponseDTO
// @Router /tests [get]
func (ctrl *TestController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	tests, err := ctrl.testSvc.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, tests, "")
}

// Get godoc
// @Summary Get one test
// @Description Questions are embedded only for Admins and Mentors.
// @Tags Tests
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Router /tests/{id} [get]
func (ctrl *TestController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	test, err := ctrl.testSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, test, "")
}

// Create godoc
// @Summary Create a test
// @Description Admin only.
// @Tags Tests
// @Security BearerAuth
// @Accept multipart/form-data
// @Param title formData string true "Title"
// @Param type formData string true "Type (QCM, Open, Practical)"
// @Success 201 {object} dto.TestResponseDTO
// @Router /tests [post]
func (ctrl *TestController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	test, err := ctrl.testSvc.Create(actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, test, "Test created.")
}

// Update godoc
// @Summary Update a test
// @Tags Tests
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Router /tests/{id} [put]
func (ctrl *TestController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	test, err := ctrl.testSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, test, "Test updated.")
}

// Delete godoc
// @Summary Delete a test and its questions
// @Tags Tests
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Router /tests/{id} [delete]
func (ctrl *TestController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.testSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Test deleted.")
}

// Download godoc
// @Summary Download a test file
// @Tags Tests
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {file} binary
// @Router /tests/{id}/download [get]
func (ctrl *TestController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.testSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
