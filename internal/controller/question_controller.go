package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/service"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// List godoc
// @Summary List questions
// @Description Admin and Mentor only. Filter with the test_id query parameter.
// @Tags Questions
// @Security BearerAuth
// @Param test_id query int false "Filter by test"
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questions [get]
func (ctrl *QuestionController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var testID uint
	if raw := c.Query("test_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid test_id")
			return
		}
		testID = uint(parsed)
	}
	questions, err := ctrl.questionSvc.List(actor, testID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, questions, "")
}

// Get godoc
// @Summary Get one question
// @Tags Questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Router /questions/{id} [get]
func (ctrl *QuestionController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	question, err := ctrl.questionSvc.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, question, "")
}

// Create godoc
// @Summary Create a question
// @Description Admin and Mentor only. The parent test must exist.
// @Tags Questions
// @Security BearerAuth
// @Accept multipart/form-data
// @Param test_id formData int true "Parent test"
// @Param text formData string true "Question text"
// @Param type formData string true "Type (QCM, Open, Practical)"
// @Success 201 {object} dto.QuestionResponseDTO
// @Router /questions [post]
func (ctrl *QuestionController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	question, err := ctrl.questionSvc.Create(actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, question, "Question created.")
}

// Update godoc
// @Summary Update a question
// @Tags Questions
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Router /questions/{id} [put]
func (ctrl *QuestionController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	question, err := ctrl.questionSvc.Update(actor, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, question, "Question updated.")
}

// Delete godoc
// @Summary Delete a question
// @Description Admin only.
// @Tags Questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.questionSvc.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil, "Question deleted.")
}

// Download godoc
// @Summary Download a question attachment
// @Tags Questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {file} binary
// @Router /questions/{id}/download [get]
func (ctrl *QuestionController) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, name, err := ctrl.questionSvc.Download(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
