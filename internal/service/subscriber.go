package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/jimothydawson/phoebe-fund/internal/client"
	"github.com/jimothydawson/phoebe-fund/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const defaultSource = "homepage"

type SubscriberService interface {
	Subscribe(ctx context.Context, email, source string) error
}

type subscriberServiceImpl struct {
	store  client.RecordStore
	logger zerolog.Logger
}

func NewSubscriberService(store client.RecordStore, logger zerolog.Logger) SubscriberService {
	return &subscriberServiceImpl{
		store:  store,
		logger: logger,
	}
}

func (s *subscriberServiceImpl) Subscribe(ctx context.Context, email, source string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if source == "" {
		source = defaultSource
	}

	err := s.store.CreateSubscriber(ctx, &model.Subscriber{
		Email:  email,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("store subscriber: %w", err)
	}

	s.logger.Info().Str("source", source).Msg("subscriber recorded")
	return nil
}
