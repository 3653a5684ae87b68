package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{
			Error:   "Failed to fetch orders",
			Details: err.Error(),
		})
	}

	resp := &dto.OrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, dto.OrderResponse{
			ID:        order.ID,
			Name:      order.Name,
			Email:     order.Email,
			Sex:       order.Style,
			Size:      order.Size,
			Amount:    order.Amount,
			Status:    order.Status,
			Date:      order.Date,
			PaymentID: order.PaymentID,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
