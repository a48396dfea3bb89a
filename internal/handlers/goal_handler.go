package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/ledger"
	"personalfinance/internal/services"
)

// GoalHandler handles saving-goal requests.
type GoalHandler struct {
	ledgerService services.LedgerServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(ledgerService services.LedgerServicer) *GoalHandler {
	return &GoalHandler{ledgerService: ledgerService}
}

// CreateGoalRequest represents the request payload for creating a saving goal
type CreateGoalRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Target decimal.Decimal `json:"target" binding:"positive_amount" swaggertype:"number"`
}

// ContributeRequest represents the request payload for funding a saving goal
type ContributeRequest struct {
	WalletID string          `json:"wallet_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"positive_amount" swaggertype:"number"`
	Note     string          `json:"note" binding:"max=500"`
}

// GetGoals handles the retrieval of all saving goals
// @Summary     List saving goals
// @Description Get every saving goal with its progress percentage and status
// @Tags        goals
// @Produce     json
// @Success     200 {array} summary.GoalProgress "Saving goals"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": h.ledgerService.GetGoals()})
}

// GetGoalByID handles the retrieval of a single saving goal
// @Summary     Get saving goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} summary.GoalProgress "Saving goal"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	goal, err := h.ledgerService.GetGoalByID(goalID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// CreateGoal handles the creation of a saving goal
// @Summary     Create a saving goal
// @Description Add a new saving goal with nothing saved yet
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.SavingGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Changes could not be saved"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.ledgerService.CreateGoal(c.Request.Context(), ledger.GoalInput{
		Name:   req.Name,
		Target: req.Target,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// Contribute handles moving money from a wallet into a saving goal
// @Summary     Contribute to a saving goal
// @Description Debit a wallet and credit the goal. Saved is capped at the target; the wallet is still debited the full amount.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body ContributeRequest true "Contribution details"
// @Success     201 {object} models.Transaction "Contribution recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     500 {object} ErrorResponse "Changes could not be saved"
// @Router      /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.ledgerService.Contribute(c.Request.Context(), ledger.ContributeInput{
		GoalID:   goalID,
		WalletID: req.WalletID,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// DeleteGoal handles removing a saving goal
// @Summary     Delete a saving goal
// @Description Remove a goal. Contributions already made are not refunded. Unknown ids succeed.
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     500 {object} ErrorResponse "Changes could not be saved"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saving goal deleted successfully"})
}
