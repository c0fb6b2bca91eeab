package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves the authenticated caller's profile, wallet and history.
type userHandler struct {
	userService        portssvc.UserSvcFacade
	walletService      portssvc.WalletSvcFacade
	ledgerService      portssvc.LedgerSvc
	transactionService portssvc.TransactionSvcFacade
}

func newUserHandler(services *portssvc.ServiceContainer) *userHandler {
	return &userHandler{
		userService:        services.User,
		walletService:      services.Wallet,
		ledgerService:      services.Ledger,
		transactionService: services.Transaction,
	}
}

// registerUserRoutes registers the /me routes.
func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newUserHandler(services)

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.GET("/wallet", h.getWallet)
		me.PUT("/wallet", h.chargeWallet)
		me.POST("/payment", h.makePayment)
		me.GET("/transactions", h.listTransactions)
	}
}

// getMe godoc
// @Summary Get the current user
// @Description Returns the caller's profile and wallet
// @Tags users
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve user")
		return
	}
	wallet, err := h.walletService.ResolveWallet(c.Request.Context(), domain.UserID(userID))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User:   dto.ToUserResponse(user),
		Wallet: dto.ToWalletResponse(wallet),
	})
}

// getWallet godoc
// @Summary Get the current user's wallet
// @Description Returns the wallet, or its balance converted to another currency when 'currency' is given
// @Tags wallet
// @Produce json
// @Param currency query string false "Currency to express the balance in" minlength(3) maxlength(3)
// @Success 200 {object} dto.WalletResponse "Without currency"
// @Success 200 {object} dto.BalanceResponse "With currency"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Exchange rate not set"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/wallet [get]
func (h *userHandler) getWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	wallet, err := h.walletService.ResolveWallet(ctx, domain.UserID(userID))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve wallet")
		return
	}
	if params.CurrencyCode == "" {
		c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
		return
	}

	balance, err := h.walletService.BalanceIn(ctx, wallet, params.CurrencyCode)
	if err != nil {
		respondWithError(c, err, "Failed to convert balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(wallet.WalletID, strings.ToUpper(params.CurrencyCode), balance))
}

// chargeWallet godoc
// @Summary Charge the current user's wallet
// @Description Adds money from outside the ledger. The amount is converted to the wallet currency.
// @Tags wallet
// @Accept json
// @Produce json
// @Param charge body dto.ChargeRequest true "Charge details"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Exchange rate not set"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/wallet [put]
func (h *userHandler) chargeWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChargeWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.ledgerService.Charge(c.Request.Context(), domain.UserID(userID), req.Amount, req.CurrencyCode)
	if err != nil {
		respondWithError(c, err, "Failed to charge wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// makePayment godoc
// @Summary Pay another user
// @Description Moves money from the caller's wallet to the payee's wallet. The amount is stated in any supported currency.
// @Tags wallet
// @Accept json
// @Produce json
// @Param payment body dto.PaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Payee not found"
// @Failure 409 {object} ErrorResponse "Exchange rate not set"
// @Failure 422 {object} ErrorResponse "Not enough money"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/payment [post]
func (h *userHandler) makePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MakePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	payer, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve user")
		return
	}
	payee, err := h.userService.GetUserByUsername(ctx, req.ToUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payee not found"})
			return
		}
		respondWithError(c, err, "Failed to retrieve payee")
		return
	}

	txn, err := h.ledgerService.MakePayment(ctx, domain.UserID(payer.UserID), domain.UserID(payee.UserID), req.Amount, req.CurrencyCode)
	if err != nil {
		respondWithError(c, err, "Failed to make payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(txn, payer.Username, payee.Username))
}

// listTransactions godoc
// @Summary List the current user's transactions
// @Description Returns payments the caller sent or received, oldest first, with cursor pagination
// @Tags wallet
// @Produce json
// @Param before query string false "Only transactions at or before this RFC3339 time"
// @Param after query string false "Only transactions at or after this RFC3339 time"
// @Param limit query int false "Page size" default(50) minimum(0) maximum(500)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/transactions [get]
func (h *userHandler) listTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, next, err := h.transactionService.ListWalletTransactions(c.Request.Context(), domain.UserID(userID), params.ToFilter())
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, next))
}
