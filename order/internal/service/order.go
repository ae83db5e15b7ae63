package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/koberec/eshop/internal/constants"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/internal/repository"
	"github.com/koberec/eshop/order/internal/cache"
	orderErrors "github.com/koberec/eshop/order/internal/errors"
	"github.com/koberec/eshop/order/internal/otel"
	"github.com/koberec/eshop/order/pkg/event"
	"github.com/koberec/eshop/order/pkg/request"
	"github.com/koberec/eshop/order/pkg/response"
	"github.com/koberec/eshop/order/pkg/status"
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *OrderService {
	return &OrderService{pool: pool, queries: queries, cache: cache}
}

// ChangeStatus moves an order along the status transition table. The
// payment confirmed event fires only on the first transition into
// paid, repeated paid updates keep it silent.
func (s OrderService) ChangeStatus(
	c context.Context,
	param request.ChangeOrderStatus,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService ChangeStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OrderService ChangeStatus").
		Str(constants.KEY_ORDER_ID, param.OrderId.String()).
		Str(constants.KEY_ORDER_STATUS, param.Status).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "parsing status").Logger()
	logger.Info().Msg("parsing status")
	next, err := status.Parse(param.Status)
	if err != nil {
		err = fmt.Errorf(
			"failed parsing status=%s with error=%w",
			param.Status,
			errors.Join(err, orderErrors.ErrIllegalTransition),
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("parsed status")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderById(c, param.OrderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding order with error=%w", orderErrors.ErrOrderNotFound)
		} else {
			err = fmt.Errorf("failed finding order with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(constants.KEY_PROCESS, "checking transition").Logger()
	logger.Info().Msg("checking transition")
	current := status.Status(order.Status)
	if !current.CanTransitionTo(next) {
		err = fmt.Errorf(
			"failed changing status from=%s to=%s with error=%w",
			current,
			next,
			orderErrors.ErrIllegalTransition,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	firstPaid := next == status.Paid && current != status.Paid
	logger.Info().Bool("firstPaid", firstPaid).Msg("checked transition")

	logger = logger.With().Str(constants.KEY_PROCESS, "updating order status").Logger()
	logger.Info().Msg("updating order status")
	_, err = s.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:     param.OrderId,
		Status: repository.OrderStatus(next),
	})
	if err != nil {
		err = fmt.Errorf("failed updating order status with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("updated order status")

	logger = logger.With().Str(constants.KEY_PROCESS, "getting updated order").Logger()
	logger.Info().Msg("getting updated order")
	updated, err := s.queries.FindOrderById(c, param.OrderId)
	if err != nil {
		err = fmt.Errorf("failed getting updated order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	res, err := updated.Response()
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("got updated order")

	s.cacheOrder(c, res)
	if firstPaid {
		s.publishPaymentConfirmed(c, res)
	}

	return res, nil
}

func (s OrderService) FindOrderById(
	c context.Context,
	orderId uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KEY_ORDER, orderId)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OrderService FindOrderById").
		Str(constants.KEY_ORDER_ID, orderId.String()).
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding order in cache").Logger()
	logger.Info().Msg("finding order in cache")
	cached, err := s.cache.Get(c, cacheKey).Result()
	if err == nil {
		res := response.Order{}
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			logger.Info().Msg("found order in cache")
			return res, nil
		}
	}
	logger.Info().Msg("order not found in cache")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderById(c, orderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding order with error=%w", orderErrors.ErrOrderNotFound)
		} else {
			err = fmt.Errorf("failed finding order with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	res, err := order.Response()
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	s.cacheOrder(c, res)

	return res, nil
}

func (s OrderService) FindOrders(
	c context.Context,
	param request.FindOrders,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OrderService FindOrders").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "parsing status filter").Logger()
	statusFilter := repository.NullOrderStatus{}
	if param.Status != "" {
		st, err := status.Parse(param.Status)
		if err != nil {
			err = fmt.Errorf("failed parsing status filter=%s with error=%w", param.Status, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		statusFilter = repository.NullOrderStatus{
			OrderStatus: repository.OrderStatus(st),
			Valid:       true,
		}
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	rows, err := s.queries.FindOrders(c, repository.FindOrdersParams{
		Offset: param.Offset,
		Limit:  param.Limit,
		Status: statusFilter,
		UserID: param.UserId,
	})
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found orders")

	logger = logger.With().Str(constants.KEY_PROCESS, "mapping orders").Logger()
	orders := make([]response.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.Response()
		if err != nil {
			err = fmt.Errorf("failed mapping order with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		orders = append(orders, order)
	}
	logger.Info().Msg("mapped orders")

	return orders, nil
}

// publishPaymentConfirmed is fired once per order, publish failures do
// not roll back the status change.
func (s OrderService) publishPaymentConfirmed(c context.Context, order response.Order) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "publishing payment confirmed").
		Str(constants.KEY_CHANNEL, constants.CHANNEL_PAYMENT_CONFIRMED).
		Str(constants.KEY_ORDER_ID, order.ID.String()).
		Logger()

	payload, err := json.Marshal(event.PaymentConfirmed{Order: order})
	if err != nil {
		err = fmt.Errorf("failed marshalling payment confirmed event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	err = s.cache.Publish(c, constants.CHANNEL_PAYMENT_CONFIRMED, payload).Err()
	if err != nil {
		err = fmt.Errorf("failed publishing payment confirmed event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("published payment confirmed event")
}
