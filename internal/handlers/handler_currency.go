package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/budgettrackr/budget_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.addCurrency)
		currencies.GET("/convert", h.convert)
		currencies.GET("/:code", h.getCurrency)
		currencies.PUT("/default", h.setDefaultCurrency)
		currencies.DELETE("/:code", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists the user's currencies, default first. A brand-new user receives the popular starter set.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(currencies))
}

// addCurrency godoc
// @Summary Add a currency
// @Description Adds a currency to the user's registry. Posting an existing code returns the stored row with a message unless force is set, which overwrites it.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyEnvelope "Code already exists, stored row returned"
// @Success 201 {object} dto.CurrencyEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	currency, written, err := h.currencyService.AddOrUpsertCurrency(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to add currency")
		return
	}

	if !written {
		c.JSON(http.StatusOK, dto.CurrencyEnvelope{
			Currency: dto.ToCurrencyResponse(currency),
			Message:  "Currency already exists",
		})
		return
	}

	logger.Info("Currency saved", slog.String("currency_code", currency.Code))
	c.JSON(http.StatusCreated, dto.CurrencyEnvelope{Currency: dto.ToCurrencyResponse(currency)})
}

// getCurrency godoc
// @Summary Get a currency
// @Description Returns one of the user's currencies by code.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		respondServiceError(c, err, "Failed to get currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// setDefaultCurrency godoc
// @Summary Set the default currency
// @Description Makes the named currency the user's single default, atomically.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   body body dto.SetDefaultCurrencyRequest true "Currency code"
// @Success 200 {object} dto.CurrencyEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/default [put]
func (h *currencyHandler) setDefaultCurrency(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SetDefaultCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.SetDefaultCurrency(c.Request.Context(), userID, req.CurrencyCode)
	if err != nil {
		respondServiceError(c, err, "Failed to set default currency")
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyEnvelope{
		Currency: dto.ToCurrencyResponse(currency),
		Message:  "Default currency updated",
	})
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency. The default cannot be deleted while other currencies remain.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.CurrencyEnvelope
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 409 {object} ErrorResponse "Currency is the default and others remain"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.DeleteCurrency(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		respondServiceError(c, err, "Failed to delete currency")
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyEnvelope{
		Currency: dto.ToCurrencyResponse(currency),
		Message:  "Currency deleted",
	})
}

// convert godoc
// @Summary Convert between currencies
// @Description Converts an amount between two of the user's currencies through the INR base.
// @Tags currencies
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Amount to convert"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency code"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	amountStr := c.Query("amount")
	if from == "" || to == "" || amountStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from, to and amount query parameters are required"})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a decimal number"})
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load currencies for conversion")
		return
	}

	converted, err := h.currencyService.ConvertAmount(amount, from, to, currencies)
	if err != nil {
		respondServiceError(c, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		From:            from,
		To:              to,
		Amount:          amount,
		ConvertedAmount: converted,
	})
}
