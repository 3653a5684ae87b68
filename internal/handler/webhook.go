package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Unable to read request body"})
	}

	// http.Header lookup is case-insensitive, so either header spelling the
	// processor uses resolves here.
	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.webhookService.HandleEvent(ctx, payload, signature); err != nil {
		if errors.Is(err, service.ErrBadSignature) {
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Webhook Error: " + err.Error()})
		}
		// Non-2xx makes the processor redeliver the whole event later.
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{
			Error:   "Webhook processing failed",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &dto.WebhookResponse{Received: true})
}
