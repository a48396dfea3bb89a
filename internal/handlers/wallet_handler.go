package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfinance/internal/services"
)

// WalletHandler handles wallet-related requests.
type WalletHandler struct {
	ledgerService services.LedgerServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerService services.LedgerServicer) *WalletHandler {
	return &WalletHandler{ledgerService: ledgerService}
}

// GetWallets handles the retrieval of all wallets
// @Summary     List wallets
// @Description Get every wallet with its current balance
// @Tags        wallets
// @Produce     json
// @Success     200 {array} models.Wallet "List of wallets"
// @Router      /wallets [get]
func (h *WalletHandler) GetWallets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wallets": h.ledgerService.GetWallets()})
}

// GetWalletByID handles the retrieval of a specific wallet
// @Summary     Get wallet by ID
// @Description Get a single wallet with its current balance
// @Tags        wallets
// @Produce     json
// @Param       id path string true "Wallet ID"
// @Success     200 {object} models.Wallet "Wallet details"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [get]
func (h *WalletHandler) GetWalletByID(c *gin.Context) {
	walletID, err := parsePathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	wallet, err := h.ledgerService.GetWalletByID(walletID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}
