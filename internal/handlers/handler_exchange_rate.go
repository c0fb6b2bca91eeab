package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
	"github.com/SscSPs/wallet_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
// Reading is open to every authenticated user, setting a rate requires an admin.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchange := rg.Group("/exchange")
	{
		exchange.GET("/convert", h.convert)
		exchange.GET("/:currency", h.getExchangeRate)
		exchange.GET("/:currency/history", h.listExchangeRates)
		exchange.PUT("/:currency", middleware.AdminOnly(), h.setExchangeRate)
	}
}

// setExchangeRate godoc
// @Summary Set an exchange rate
// @Description Records how many units of the currency one unit of the base currency buys. Earlier records are kept.
// @Tags exchange rates
// @Accept json
// @Produce json
// @Param currency path string true "Currency Code (3 letters)" minlength(3) maxlength(3)
// @Param rate body dto.SetExchangeRateRequest true "New rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid rate or currency"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Administrator access required"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/{currency} [put]
func (h *exchangeRateHandler) setExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.SetRate(c.Request.Context(), c.Param("currency"), req.Rate, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to set exchange rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the latest exchange rate record for a currency
// @Tags exchange rates
// @Produce json
// @Param currency path string true "Currency Code (3 letters)" minlength(3) maxlength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid or base currency"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Exchange rate not set"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/{currency} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	rate, err := h.exchangeRateService.RateObject(c.Request.Context(), c.Param("currency"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rate history
// @Description Lists the recorded rates for a currency, newest first
// @Tags exchange rates
// @Produce json
// @Param currency path string true "Currency Code (3 letters)" minlength(3) maxlength(3)
// @Param limit query int false "Maximum number of records" default(20) minimum(0) maximum(500)
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/{currency}/history [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rates, err := h.exchangeRateService.ListRates(c.Request.Context(), c.Param("currency"), params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// convert godoc
// @Summary Convert between currencies
// @Description Returns the factor that turns an amount in 'from' into an amount in 'to', and the converted amount when one is given
// @Tags exchange rates
// @Produce json
// @Param from query string true "Source currency" minlength(3) maxlength(3)
// @Param to query string true "Target currency" minlength(3) maxlength(3)
// @Param amount query string false "Amount to convert"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Exchange rate not set"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	factor, err := h.exchangeRateService.Convert(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondWithError(c, err, "Failed to convert")
		return
	}

	resp := dto.ConversionResponse{
		From:   strings.ToUpper(params.From),
		To:     strings.ToUpper(params.To),
		Factor: factor.String(),
	}
	if !params.Amount.IsZero() {
		resp.Amount = utils.FormatMoney(params.Amount.Mul(factor))
	}
	c.JSON(http.StatusOK, resp)
}
