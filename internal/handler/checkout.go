package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jimothydawson/phoebe-fund/internal/cart"
	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Missing required fields"})
	}

	origin := c.Request().Header.Get("Origin")

	url, err := h.checkoutService.CreateSession(ctx, origin, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, service.ErrItemStyleSize):
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Each item must have style and size"})
		case errors.Is(err, cart.ErrItemTooLong):
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Cart item too long to encode"})
		default:
			// Catalog misses land here too: a 500 with details, matching the
			// frontend's existing expectations.
			return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{
				Error:   "Failed to create checkout session",
				Details: err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, &dto.CheckoutResponse{URL: url})
}
