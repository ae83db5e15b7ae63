package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/koberec/eshop/internal/constants"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/notification/internal/mail"
	"github.com/koberec/eshop/notification/internal/otel"
	"github.com/koberec/eshop/order/pkg/event"
	"github.com/koberec/eshop/order/pkg/response"
)

type NotificationService struct {
	cache  *redis.Client
	mailer *mail.Mailer
}

func NewNotificationService(cache *redis.Client, mailer *mail.Mailer) *NotificationService {
	return &NotificationService{cache: cache, mailer: mailer}
}

// Listen consumes order events until the context is cancelled. A mail
// that fails to render or send is logged and dropped, it is never
// retried.
func (s *NotificationService) Listen(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "NotificationService Listen").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "subscribing to order events").Logger()
	logger.Info().Msg("subscribing to order events")
	pubsub := s.cache.Subscribe(
		c,
		constants.CHANNEL_ORDER_CREATED,
		constants.CHANNEL_PAYMENT_CONFIRMED,
	)
	defer pubsub.Close()
	messages := pubsub.Channel()
	logger.Info().Msg("subscribed to order events")

	for {
		select {
		case <-c.Done():
			logger.Info().Msg("context cancelled stopping listener")
			return
		case message, ok := <-messages:
			if !ok {
				logger.Info().Msg("subscription closed stopping listener")
				return
			}
			s.handleMessage(c, message)
		}
	}
}

func (s *NotificationService) handleMessage(c context.Context, message *redis.Message) {
	c, span := otel.Tracer.Start(c, "NotificationService handleMessage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "NotificationService handleMessage").
		Str(constants.KEY_CHANNEL, message.Channel).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "handling order event").Logger()
	logger.Info().Msg("handling order event")
	c = logger.WithContext(c)
	var err error
	switch message.Channel {
	case constants.CHANNEL_ORDER_CREATED:
		err = s.notifyOrderCreated(c, message.Payload)
	case constants.CHANNEL_PAYMENT_CONFIRMED:
		err = s.notifyPaymentConfirmed(c, message.Payload)
	default:
		err = fmt.Errorf("unknown channel=%s", message.Channel)
	}
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("handled order event")
}

func (s *NotificationService) notifyOrderCreated(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService notifyOrderCreated")
	defer span.End()

	ev := event.OrderCreated{}
	err := json.Unmarshal([]byte(payload), &ev)
	if err != nil {
		return fmt.Errorf("failed unmarshaling order created event with error=%w", err)
	}

	subject, body, err := mail.RenderOrderCreated(ev.Order)
	if err != nil {
		return err
	}
	return s.send(c, ev.Order, subject, body)
}

func (s *NotificationService) notifyPaymentConfirmed(c context.Context, payload string) error {
	c, span := otel.Tracer.Start(c, "NotificationService notifyPaymentConfirmed")
	defer span.End()

	ev := event.PaymentConfirmed{}
	err := json.Unmarshal([]byte(payload), &ev)
	if err != nil {
		return fmt.Errorf("failed unmarshaling payment confirmed event with error=%w", err)
	}

	subject, body, err := mail.RenderPaymentConfirmed(ev.Order)
	if err != nil {
		return err
	}
	return s.send(c, ev.Order, subject, body)
}

func (s *NotificationService) send(
	c context.Context,
	order response.Order,
	subject string,
	body string,
) error {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_ORDER_ID, order.ID.String()).
		Str(constants.KEY_EMAIL, order.Email).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "sending mail").Logger()
	logger.Info().Msg("sending mail")
	err := s.mailer.Send(c, order.Email, subject, body)
	if err != nil {
		return err
	}
	logger.Info().Msg("sent mail")
	return nil
}
