package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type SubscribeHandler struct {
	subscriberService service.SubscriberService
}

func NewSubscribeHandler(subscriberService service.SubscriberService) *SubscribeHandler {
	return &SubscribeHandler{
		subscriberService: subscriberService,
	}
}

func (h *SubscribeHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Email is required"})
	}

	if err := h.subscriberService.Subscribe(ctx, req.Email, req.Source); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Email is required"})
		case errors.Is(err, service.ErrInvalidEmail):
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Invalid email format"})
		default:
			return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: "Failed to subscribe. Please try again."})
		}
	}

	return c.JSON(http.StatusOK, &dto.SubscribeResponse{
		Success: true,
		Message: "Successfully subscribed!",
	})
}
