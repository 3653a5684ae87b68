package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"

	"github.com/jimothydawson/phoebe-fund/internal/cart"
	"github.com/jimothydawson/phoebe-fund/internal/catalog"
	"github.com/jimothydawson/phoebe-fund/internal/client"
	"github.com/jimothydawson/phoebe-fund/internal/dto"
)

type CheckoutService interface {
	// CreateSession validates the cart, prices every item against the
	// catalog, encodes the cart into session metadata and creates one
	// checkout session. It returns the session's redirect URL.
	CreateSession(ctx context.Context, origin string, req *dto.CheckoutRequest) (string, error)
}

type checkoutServiceImpl struct {
	stripeClient client.PaymentClient
	prices       catalog.PriceTable
	currency     string
	siteURL      string
	logger       zerolog.Logger
}

func NewCheckoutService(
	stripeClient client.PaymentClient,
	prices catalog.PriceTable,
	currency string,
	siteURL string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		prices:       prices,
		currency:     currency,
		siteURL:      siteURL,
		logger:       logger,
	}
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, origin string, req *dto.CheckoutRequest) (string, error) {
	if req.Name == "" || req.Email == "" || len(req.Items) == 0 {
		return "", ErrMissingFields
	}

	items := make([]cart.Item, len(req.Items))
	for i, item := range req.Items {
		if item.Style == "" || item.Size == "" {
			return "", ErrItemStyleSize
		}
		items[i] = cart.Item{
			Style:     item.Style,
			Size:      item.Size,
			StrapType: item.StrapType,
		}
	}

	// Price resolution happens before any external call: a single unknown
	// style aborts the whole session, no partial sessions.
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(items))
	for i, item := range items {
		price, err := s.prices.Price(item.Style)
		if err != nil {
			return "", err
		}

		description := "Size: " + item.Size
		if item.StrapType != "" {
			description = item.StrapType + " - Size: " + item.Size
		}

		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(price),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("WWPD " + item.Label()),
					Description: stripe.String(description),
				},
			},
			Quantity: stripe.Int64(1),
		}
	}

	metadata, err := cart.Encode(req.Name, items)
	if err != nil {
		return "", fmt.Errorf("encode cart metadata: %w", err)
	}

	if origin == "" {
		origin = s.siteURL
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(req.Email),
		SuccessURL:         stripe.String(origin + "/success.html?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(origin + "/cancel.html"),
	}
	params.Metadata = metadata

	session, err := s.stripeClient.CreateCheckoutSession(ctx, params)
	if err != nil {
		return "", fmt.Errorf("stripe create checkout session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID).
		Int("items", len(items)).
		Msg("checkout session created")

	return session.URL, nil
}
