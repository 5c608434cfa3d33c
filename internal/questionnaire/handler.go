package questionnaire

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/liamkavfc/SculpoDatabase/internal/api"
	"github.com/liamkavfc/SculpoDatabase/internal/auth"
	"github.com/liamkavfc/SculpoDatabase/internal/logger"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// CreateQuestion godoc
// @Summary      Create onboarding question
// @Tags         questionnaire
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateQuestionRequest  true  "Question"
// @Success      201      {object}  Question
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /questions [post]
func (h *Handler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.repo.CreateQuestion(c.Request.Context(), &Question{
		Text:     req.Text,
		Category: req.Category,
		Order:    req.Order,
		Options:  pq.StringArray(req.Options),
	})
	if err != nil {
		logger.Error("failed to create question", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetQuestions godoc
// @Summary      List active questions
// @Tags         questionnaire
// @Produce      json
// @Success      200  {array}  Question
// @Router       /questions [get]
func (h *Handler) GetQuestions(c *gin.Context) {
	questions, err := h.repo.GetQuestions(c.Request.Context())
	if err != nil {
		logger.Error("failed to list questions", "error", err)
		questions = nil
	}
	if questions == nil {
		questions = []Question{}
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary      Get question by id
// @Tags         questionnaire
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  Question
// @Failure      404         {object}  api.ErrorResponse
// @Router       /questions/{questionID} [get]
func (h *Handler) GetQuestion(c *gin.Context) {
	q, err := h.repo.GetQuestionByID(c.Request.Context(), c.Param("questionID"))
	if errors.Is(err, ErrQuestionNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Question not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// UpdateQuestion godoc
// @Summary      Update question
// @Tags         questionnaire
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        questionID  path      string                 true  "Question ID"
// @Param        request     body      UpdateQuestionRequest  true  "Question"
// @Success      200         {object}  api.SuccessResponse
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /questions/{questionID} [put]
func (h *Handler) UpdateQuestion(c *gin.Context) {
	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.repo.UpdateQuestion(c.Request.Context(), &Question{
		ID:       c.Param("questionID"),
		Text:     req.Text,
		Category: req.Category,
		Order:    req.Order,
		Options:  pq.StringArray(req.Options),
		IsActive: *req.IsActive,
	})
	if errors.Is(err, ErrQuestionNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Question not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update question"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Question updated"})
}

// DeleteQuestion godoc
// @Summary      Deactivate question
// @Tags         questionnaire
// @Security     BearerAuth
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  api.SuccessResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /questions/{questionID} [delete]
func (h *Handler) DeleteQuestion(c *gin.Context) {
	err := h.repo.DeleteQuestion(c.Request.Context(), c.Param("questionID"))
	if errors.Is(err, ErrQuestionNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Question not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Question deactivated"})
}

// SubmitAnswer godoc
// @Summary      Submit questionnaire answer
// @Description  Upserts the authenticated user's answer to one question.
// @Tags         questionnaire
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitAnswerRequest  true  "Answer"
// @Success      201      {object}  Answer
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /questions/answers [post]
func (h *Handler) SubmitAnswer(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.repo.SubmitAnswer(c.Request.Context(), &Answer{
		UserID:     userID,
		QuestionID: req.QuestionID,
		Response:   req.Response,
	})
	if err != nil {
		logger.Error("failed to submit answer", "userId", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit answer"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAnswers godoc
// @Summary      List a user's answers
// @Tags         questionnaire
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path     string  true  "User ID"
// @Success      200     {array}  Answer
// @Router       /users/{userID}/answers [get]
func (h *Handler) GetAnswers(c *gin.Context) {
	answers, err := h.repo.GetAnswers(c.Request.Context(), c.Param("userID"))
	if err != nil {
		logger.Error("failed to list answers", "userId", c.Param("userID"), "error", err)
		answers = nil
	}
	if answers == nil {
		answers = []Answer{}
	}
	c.JSON(http.StatusOK, answers)
}
