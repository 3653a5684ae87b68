package handler

import (
	"context"

	"github.com/jimothydawson/phoebe-fund/internal/dto"
	"github.com/jimothydawson/phoebe-fund/internal/model"
)

type mockCheckoutService struct {
	url string
	err error
	req *dto.CheckoutRequest
}

func (m *mockCheckoutService) CreateSession(_ context.Context, _ string, req *dto.CheckoutRequest) (string, error) {
	m.req = req
	return m.url, m.err
}

type mockWebhookService struct {
	err       error
	payload   []byte
	signature string
}

func (m *mockWebhookService) HandleEvent(_ context.Context, payload []byte, signature string) error {
	m.payload = payload
	m.signature = signature
	return m.err
}

type mockSubscriberService struct {
	err    error
	email  string
	source string
}

func (m *mockSubscriberService) Subscribe(_ context.Context, email, source string) error {
	m.email = email
	m.source = source
	return m.err
}

type mockOrderService struct {
	orders []*model.Order
	err    error
}

func (m *mockOrderService) ListOrders(context.Context) ([]*model.Order, error) {
	return m.orders, m.err
}

type mockFundraisingService struct {
	snapshot *model.FundraisingSnapshot
	err      error
}

func (m *mockFundraisingService) Scrape(context.Context) (*model.FundraisingSnapshot, error) {
	return m.snapshot, m.err
}
