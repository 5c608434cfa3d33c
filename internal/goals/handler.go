package goals

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// CreateGoal godoc
// @Summary      Create fitness goal
// @Tags         goals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateGoalRequest  true  "Goal"
// @Success      201      {object}  Goal
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /goals [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	clientID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.repo.CreateGoal(c.Request.Context(), &Goal{
		ClientID:   clientID,
		Title:      req.Title,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		logger.Error("failed to create goal", "clientId", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListGoals godoc
// @Summary      List a client's goals
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Param        clientID  path     string  true  "Client ID"
// @Success      200       {array}  Goal
// @Router       /clients/{clientID}/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	list, err := h.repo.ListByClient(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		logger.Error("failed to list goals", "clientId", c.Param("clientID"), "error", err)
		list = nil
	}
	if list == nil {
		list = []Goal{}
	}
	c.JSON(http.StatusOK, list)
}

// UpdateGoalStatus godoc
// @Summary      Update goal status
// @Tags         goals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        goalID   path      string                   true  "Goal ID"
// @Param        request  body      UpdateGoalStatusRequest  true  "New status"
// @Success      200      {object}  api.SuccessResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /goals/{goalID}/status [patch]
func (h *Handler) UpdateGoalStatus(c *gin.Context) {
	var req UpdateGoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status"})
		return
	}

	err := h.repo.UpdateStatus(c.Request.Context(), c.Param("goalID"), req.Status)
	if errors.Is(err, ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Goal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Goal updated"})
}
