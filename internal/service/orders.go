package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jimothydawson/phoebe-fund/internal/client"
	"github.com/jimothydawson/phoebe-fund/internal/model"
)

type OrderService interface {
	// ListOrders returns all persisted order rows, newest first.
	ListOrders(ctx context.Context) ([]*model.Order, error)
}

type orderServiceImpl struct {
	store  client.RecordStore
	logger zerolog.Logger
}

func NewOrderService(store client.RecordStore, logger zerolog.Logger) OrderService {
	return &orderServiceImpl{
		store:  store,
		logger: logger,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
