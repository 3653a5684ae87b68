package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/jimothydawson/phoebe-fund/internal/cart"
	"github.com/jimothydawson/phoebe-fund/internal/client"
	"github.com/jimothydawson/phoebe-fund/internal/model"
)

type WebhookService interface {
	// HandleEvent verifies the event signature, then dispatches on the event
	// type. A returned error tells the caller to answer non-2xx so the
	// processor redelivers the whole event.
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}

type webhookServiceImpl struct {
	store         client.RecordStore
	webhookSecret string
	logger        zerolog.Logger
}

func NewWebhookService(store client.RecordStore, webhookSecret string, logger zerolog.Logger) WebhookService {
	return &webhookServiceImpl{
		store:         store,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

func (s *webhookServiceImpl) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("decode checkout session: %w", err)
		}
		return s.recordCompletedSession(ctx, &session)

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment intent: %w", err)
		}
		s.logger.Error().Str("payment_intent", intent.ID).Msg("payment failed")
		return nil

	default:
		s.logger.Debug().Str("type", string(event.Type)).Msg("unhandled event type")
		return nil
	}
}

// recordCompletedSession reconstructs the cart from session metadata and
// persists one order row per item. Writes are strictly sequential; the first
// failure aborts and surfaces so the processor redelivers.
func (s *webhookServiceImpl) recordCompletedSession(ctx context.Context, session *stripe.CheckoutSession) error {
	itemCount := cart.ItemCount(session.Metadata)
	if itemCount == 0 {
		s.logger.Warn().Str("session_id", session.ID).Msg("completed session carries no items")
		return nil
	}

	paymentID := ""
	if session.PaymentIntent != nil {
		paymentID = session.PaymentIntent.ID
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	// The session total is split evenly across items, minor units converted
	// to major. Not a per-item price lookup: rounding loss stays bounded by
	// the item count.
	amount := decimal.NewFromInt(session.AmountTotal).
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(itemCount))).
		InexactFloat64()

	// Rows already stored under this payment act as a resume cursor: writes
	// are sequential, so a redelivered event skips exactly what an earlier
	// attempt persisted instead of duplicating it.
	existing := 0
	if paymentID != "" {
		var err error
		existing, err = s.store.CountOrdersByPaymentID(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("count existing orders: %w", err)
		}
	}

	parsed := 0
	for i := 1; i <= itemCount; i++ {
		value, ok := session.Metadata[cart.ItemKey(i)]
		if !ok {
			// A single missing index does not abort the others.
			s.logger.Error().
				Str("session_id", session.ID).
				Int("index", i).
				Msg("missing item in session metadata")
			continue
		}

		style, size, ok := cart.DecodeValue(value)
		if !ok {
			s.logger.Error().
				Str("session_id", session.ID).
				Int("index", i).
				Msg("malformed item in session metadata")
			continue
		}

		parsed++
		if parsed <= existing {
			continue
		}

		order := &model.Order{
			Name:      session.Metadata[cart.KeyCustomerName],
			Email:     email,
			Style:     style,
			Size:      size,
			Amount:    amount,
			Status:    model.StatusPaid,
			PaymentID: paymentID,
		}

		if err := s.store.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("store order item %d: %w", i, err)
		}

		s.logger.Info().
			Str("session_id", session.ID).
			Int("index", i).
			Str("style", style).
			Msg("order item recorded")
	}

	return nil
}
