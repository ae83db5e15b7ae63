package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/koberec/eshop/internal/constants"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/internal/repository"
	"github.com/koberec/eshop/order/internal/cache"
	orderErrors "github.com/koberec/eshop/order/internal/errors"
	"github.com/koberec/eshop/order/internal/otel"
	"github.com/koberec/eshop/order/pkg/event"
	"github.com/koberec/eshop/order/pkg/pricing"
	"github.com/koberec/eshop/order/pkg/request"
	"github.com/koberec/eshop/order/pkg/response"
)

// Checkout turns the user's cart into an immutable order. The order,
// its item snapshots and the cart cleanup are committed in a single
// transaction, so a failed checkout leaves the cart untouched.
func (s OrderService) Checkout(
	c context.Context,
	param request.CheckoutOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OrderService Checkout").
		Str(constants.KEY_USER_ID, param.UserId.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating shipping and payment method").Logger()
	logger.Info().Msg("validating shipping method")
	shippingPrice, ok := pricing.ShippingPrice(param.ShippingMethod)
	if !ok {
		err := fmt.Errorf(
			"failed validating shippingMethod=%s with error=%w",
			param.ShippingMethod,
			orderErrors.ErrInvalidShippingMethod,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("validated shipping method")

	logger.Info().Msg("validating payment method")
	if !pricing.IsPaymentMethod(param.PaymentMethod) {
		err := fmt.Errorf(
			"failed validating paymentMethod=%s with error=%w",
			param.PaymentMethod,
			orderErrors.ErrInvalidPaymentMethod,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("validated payment method")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, param.UserId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding cart with error=%w", orderErrors.ErrEmptyCart)
		} else {
			err = fmt.Errorf("failed finding cart with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(constants.KEY_CART_ID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	cartItems, err := s.queries.FindCartItemsWithProductByCartId(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if len(cartItems) == 0 {
		err = fmt.Errorf("failed checking out cart with error=%w", orderErrors.ErrEmptyCart)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Any(constants.KEY_CART_ITEMS, cartItems).Logger()
	logger.Info().Msg("found cart items")

	logger = logger.With().Str(constants.KEY_PROCESS, "calculating prices").Logger()
	logger.Info().Msg("calculating prices")
	itemsPrice := decimal.Zero
	for _, item := range cartItems {
		price := decimal.NewFromBigInt(item.Price.Int, item.Price.Exp)
		itemsPrice = itemsPrice.Add(price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	totalPrice := itemsPrice.Add(shippingPrice)
	logger.Info().
		Str("itemsPrice", itemsPrice.String()).
		Str("shippingPrice", shippingPrice.String()).
		Str("totalPrice", totalPrice.String()).
		Msg("calculated prices")

	logger = logger.With().Str(constants.KEY_PROCESS, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := s.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		logger := logger.With().Str(constants.KEY_PROCESS, "rolling back transaction").Logger()
		err := tx.Rollback(c)
		if err != nil {
			if errors.Is(err, pgx.ErrTxClosed) {
				return
			}
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("rolled back transaction")
	}()

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	qtx := s.queries.WithTx(tx)
	insertedOrder, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		UserID:         param.UserId,
		Name:           param.Name,
		Email:          param.Email,
		Phone:          param.Phone,
		Street:         param.Street,
		City:           param.City,
		Zip:            param.Zip,
		ShippingMethod: param.ShippingMethod,
		ShippingPrice: pgtype.Numeric{
			Exp:              shippingPrice.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              shippingPrice.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
		PaymentMethod: param.PaymentMethod,
		ItemsPrice: pgtype.Numeric{
			Exp:              itemsPrice.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              itemsPrice.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
		TotalPrice: pgtype.Numeric{
			Exp:              totalPrice.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              totalPrice.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(constants.KEY_ORDER_ID, insertedOrder.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting order items").Logger()
	logger.Info().Msg("preparing order items")
	args := make([]repository.InsertOrderItemsParams, len(cartItems))
	for i, item := range cartItems {
		unitPrice := decimal.NewFromBigInt(item.Price.Int, item.Price.Exp)
		itemTotal := unitPrice.Mul(decimal.NewFromInt32(item.Quantity))
		args[i] = repository.InsertOrderItemsParams{
			OrderID:     insertedOrder.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice: pgtype.Numeric{
				Exp:              unitPrice.Exponent(),
				InfinityModifier: pgtype.Finite,
				Int:              unitPrice.Coefficient(),
				NaN:              false,
				Valid:            true,
			},
			TotalPrice: pgtype.Numeric{
				Exp:              itemTotal.Exponent(),
				InfinityModifier: pgtype.Finite,
				Int:              itemTotal.Coefficient(),
				NaN:              false,
				Valid:            true,
			},
		}
	}
	logger.Info().Msg("prepared order items")

	logger.Info().Msg("inserting order items")
	insertedCount, err := qtx.InsertOrderItems(c, args)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("inserted order items count=%d", insertedCount)

	logger = logger.With().Str(constants.KEY_PROCESS, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	err = qtx.DeleteCartItemsByCartId(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed clearing cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	err = qtx.TouchCart(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed touching cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("cleared cart")

	logger = logger.With().Str(constants.KEY_PROCESS, "getting inserted order").Logger()
	logger.Info().Msg("getting inserted order")
	order, err := qtx.FindOrderById(c, insertedOrder.ID)
	if err != nil {
		err = fmt.Errorf("failed getting inserted order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("got inserted order")

	logger = logger.With().Str(constants.KEY_PROCESS, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("committed transaction")

	logger = logger.With().Str(constants.KEY_PROCESS, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	res, err := order.Response()
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("mapped order")

	s.cacheOrder(c, res)
	s.publishOrderCreated(c, res)

	return res, nil
}

func (s OrderService) cacheOrder(c context.Context, order response.Order) {
	cacheKey := fmt.Sprintf(cache.KEY_ORDER, order.ID)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "caching order").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	orderJson, err := json.Marshal(order)
	if err != nil {
		err = fmt.Errorf("failed marshalling order with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	err = s.cache.Set(c, cacheKey, orderJson, time.Hour).Err()
	if err != nil {
		err = fmt.Errorf("failed caching order with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("cached order")
}

// publishOrderCreated notifies subscribers about a freshly created
// order. Publish failures do not fail the checkout, the order is
// already committed.
func (s OrderService) publishOrderCreated(c context.Context, order response.Order) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "publishing order created").
		Str(constants.KEY_CHANNEL, constants.CHANNEL_ORDER_CREATED).
		Str(constants.KEY_ORDER_ID, order.ID.String()).
		Logger()

	payload, err := json.Marshal(event.OrderCreated{Order: order})
	if err != nil {
		err = fmt.Errorf("failed marshalling order created event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	err = s.cache.Publish(c, constants.CHANNEL_ORDER_CREATED, payload).Err()
	if err != nil {
		err = fmt.Errorf("failed publishing order created event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("published order created event")
}
