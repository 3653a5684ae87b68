package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type FundraisingHandler struct {
	fundraisingService service.FundraisingService
}

func NewFundraisingHandler(fundraisingService service.FundraisingService) *FundraisingHandler {
	return &FundraisingHandler{
		fundraisingService: fundraisingService,
	}
}

func (h *FundraisingHandler) GetTotals(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.fundraisingService.Scrape(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{
			Error:   "Failed to scrape fundraising page",
			Details: err.Error(),
		})
	}

	// The page changes rarely; let clients cache for five minutes.
	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	return c.JSON(http.StatusOK, &dto.FundraisingResponse{
		Success: true,
		Debug:   snapshot,
	})
}
