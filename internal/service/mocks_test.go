package service

import (
	"context"
	"errors"

	"github.com/jimothydawson/phoebe-fund/internal/model"
)

// mockRecordStore stands in for the Airtable-backed store.
type mockRecordStore struct {
	orders      []*model.Order
	subscribers []*model.Subscriber

	existing   int   // result of CountOrdersByPaymentID
	countErr   error
	countCalls int

	failOnCall int // 1-based CreateOrder call index to fail at, 0 = never
	subErr     error
	listErr    error
}

func (m *mockRecordStore) CreateOrder(_ context.Context, order *model.Order) error {
	if m.failOnCall > 0 && len(m.orders)+1 == m.failOnCall {
		return errors.New("airtable error 503: service unavailable")
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockRecordStore) ListOrders(context.Context) ([]*model.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.orders, nil
}

func (m *mockRecordStore) CountOrdersByPaymentID(context.Context, string) (int, error) {
	m.countCalls++
	return m.existing, m.countErr
}

func (m *mockRecordStore) CreateSubscriber(_ context.Context, sub *model.Subscriber) error {
	if m.subErr != nil {
		return m.subErr
	}
	m.subscribers = append(m.subscribers, sub)
	return nil
}
