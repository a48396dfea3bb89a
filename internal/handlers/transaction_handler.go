package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/ledger"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/services"
)

// TransactionHandler handles transaction and transfer requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents the request payload for recording income or an expense
type CreateTransactionRequest struct {
	WalletID string                 `json:"wallet_id" binding:"required"`
	Type     models.TransactionType `json:"type" binding:"required,entry_type"`
	Amount   decimal.Decimal        `json:"amount" binding:"positive_amount" swaggertype:"number"`
	Category string                 `json:"category" binding:"required,max=100"`
	Note     string                 `json:"note" binding:"max=500"`
}

// CreateTransferRequest represents the request payload for a wallet-to-wallet transfer
type CreateTransferRequest struct {
	SourceWalletID string          `json:"source_wallet_id" binding:"required"`
	TargetWalletID string          `json:"target_wallet_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"positive_amount" swaggertype:"number"`
	Note           string          `json:"note" binding:"max=500"`
}

// TransactionQuery represents the paging and filters accepted when listing transactions
type TransactionQuery struct {
	pagination.PageRequest
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category"`
	Wallet   string `form:"wallet"`
}

// CreateTransaction handles recording a new income or expense
// @Summary     Record a transaction
// @Description Record income or an expense against a wallet. Expenses may not exceed the wallet balance.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     500 {object} ErrorResponse "Changes could not be saved"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.ledgerService.RecordTransaction(c.Request.Context(), ledger.RecordInput{
		WalletID: req.WalletID,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     req.Type,
		Note:     req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// CreateTransfer handles a transfer between two wallets
// @Summary     Create a transfer
// @Description Move money between two different wallets. Returns the inflow and outflow rows.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {array} models.Transaction "Inflow and outflow"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     500 {object} ErrorResponse "Changes could not be saved"
// @Router      /transfers [post]
func (h *TransactionHandler) CreateTransfer(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.ledgerService.Transfer(c.Request.Context(), ledger.TransferInput{
		SourceID: req.SourceWalletID,
		TargetID: req.TargetWalletID,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactions": transactions})
}

// GetTransactions handles the retrieval of transaction history
// @Summary     List transactions
// @Description Get a paginated, most-recent-first list of transactions with optional filters
// @Tags        transactions
// @Produce     json
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by type (income, expense, transfer)"
// @Param       category  query string false "Filter by category"
// @Param       wallet    query string false "Filter by wallet name"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.ledgerService.GetTransactions(query.PageRequest, query.filter()))
}

func (q TransactionQuery) filter() services.TransactionFilter {
	filter := services.TransactionFilter{Category: q.Category, Wallet: q.Wallet}
	if q.Type != "" {
		txType := models.TransactionType(q.Type)
		filter.Type = &txType
	}
	return filter
}
