package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelabs/store-api/internal/api/metrics"
	"github.com/storelabs/store-api/internal/core/ports"
)

// PaymentHandler proxies payment-intent creation to the configured gateway.
type PaymentHandler struct {
	provider ports.PaymentProvider
}

func NewPaymentHandler(provider ports.PaymentProvider) *PaymentHandler {
	return &PaymentHandler{provider: provider}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /api/payments/create-payment-intent.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createIntentRequest  true  "Amount (minor units) and currency"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/payments/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clientSecret, err := h.provider.CreateIntent(c.Request().Context(), req.Amount, req.Currency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: clientSecret})
}
