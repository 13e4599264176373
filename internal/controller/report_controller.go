package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type ReportController struct {
	reportSvc service.ReportService
}

func NewReportController(reportSvc service.ReportService) *ReportController {
	return &ReportController{reportSvc: reportSvc}
}

// List godoc
// @Summary List reports with statistics
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ReportListDTO
// @Router /reports [get]
func (ctrl *ReportController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	list, err := ctrl.reportSvc.List(actor, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, list, "")
}

// Get godoc
// @Summary Get one report
// @Tags Reports
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.ReportResponseDTO
// @Router /reports/{id} [get]
func (ctrl *ReportController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	report, err := ctrl.reportSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, report, "")
}

// Create godoc
// @Summary Submit a new report
// @Description Only Participants submit reports.
// @Tags Reports
// @Security BearerAuth
// @Accept multipart/form-data
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "Report file"
// @Success 201 {object} dto.ReportResponseDTO
// @Router /reports [post]
func (ctrl *ReportController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.SubmissionCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	report, err := ctrl.reportSvc.Create(actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, report, "Report submitted.")
}

// Update godoc
// @Summary Update a report
// @Tags Reports
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Report ID"
// @Success 200 {object} dto.ReportResponseDTO
// @Router /reports/{id} [put]
func (ctrl *ReportController) Update(c *gin.Context) {
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
	report, err := ctrl.reportSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, report, "Report updated.")
}

// UpdateStatus godoc
// @Summary Change a report's review status
// @Description Reserved to Admins and Mentors.
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Param id path int true "Report ID"
// @Param payload body dto.StatusUpdateDTO true "New status"
// @Success 200 {object} dto.ReportResponseDTO
// @Router /reports/{id}/status [put]
func (ctrl *ReportController) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.StatusUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	report, err := ctrl.reportSvc.UpdateStatus(actor, id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, report, "Report status updated.")
}

// Delete godoc
// @Summary Delete a report
// @Tags Reports
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Router /reports/{id} [delete]
func (ctrl *ReportController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.reportSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Report deleted.")
}

// Download godoc
// @Summary Download a report file
// @Tags Reports
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {file} binary
// @Router /reports/{id}/download [get]
func (ctrl *ReportController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.reportSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
