package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/koberec/eshop/cart/internal/cache"
	"github.com/koberec/eshop/cart/internal/otel"
	"github.com/koberec/eshop/cart/pkg/request"
	"github.com/koberec/eshop/cart/pkg/response"
	catalogResponse "github.com/koberec/eshop/catalog/pkg/response"
	"github.com/koberec/eshop/internal/constants"
	inHttp "github.com/koberec/eshop/internal/http"
	"github.com/koberec/eshop/internal/log"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/internal/repository"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *CartService {
	return &CartService{pool: pool, queries: queries, cache: cache}
}

// FindCartByUserId returns the user's cart, creating an empty one on
// first access.
func (s CartService) FindCartByUserId(
	c context.Context,
	userId uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartByUserId")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KEY_CART, userId)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService FindCartByUserId").
		Str(constants.KEY_USER_ID, userId.String()).
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart in cache").Logger()
	logger.Info().Msg("finding cart in cache")
	cached, err := s.cache.Get(c, cacheKey).Result()
	if err == nil {
		cart := response.Cart{}
		if err := json.Unmarshal([]byte(cached), &cart); err == nil {
			logger.Info().Msg("found cart in cache")
			return cart, nil
		}
	}
	logger.Info().Msg("cart not found in cache")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart in db").Logger()
	logger.Info().Msg("finding cart in db")
	c = logger.WithContext(c)
	cart, err := s.findOrCreateCart(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found cart in db")

	s.cacheCart(c, userId, cart)

	return cart, nil
}

// AddCartItem validates the product against the catalog service, then
// upserts the item. Items with the same product, color and size are
// merged by increasing the quantity.
func (s CartService) AddCartItem(
	c context.Context,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService AddCartItem").
		Str(constants.KEY_USER_ID, param.UserId.String()).
		Str(constants.KEY_PRODUCT_ID, param.ProductId.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding product in catalog").Logger()
	logger.Info().Msg("finding product in catalog")
	product, err := s.findProduct(c, param.ProductId)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product in catalog")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	c = logger.WithContext(c)
	cart, err := s.findOrCreateCart(c, param.UserId)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(constants.KEY_CART_ID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(constants.KEY_PROCESS, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := s.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		err := tx.Rollback(c)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	logger = logger.With().Str(constants.KEY_PROCESS, "upserting cart item").Logger()
	logger.Info().Msg("upserting cart item")
	qtx := s.queries.WithTx(tx)
	_, err = qtx.UpsertCartItem(c, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		ProductID: param.ProductId,
		Color:     param.Color,
		Size:      param.Size,
		Quantity:  param.Quantity,
		Price: pgtype.Numeric{
			Exp:              product.Price.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              product.Price.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
	})
	if err != nil {
		err = fmt.Errorf("failed upserting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	err = qtx.TouchCart(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed touching cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("upserted cart item")

	logger = logger.With().Str(constants.KEY_PROCESS, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("committed transaction")

	s.invalidateCart(c, param.UserId)

	logger = logger.With().Str(constants.KEY_PROCESS, "finding updated cart").Logger()
	logger.Info().Msg("finding updated cart")
	c = logger.WithContext(c)
	updated, err := s.FindCartByUserId(c, param.UserId)
	if err != nil {
		err = fmt.Errorf("failed finding updated cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found updated cart")

	return updated, nil
}

func (s CartService) RemoveCartItem(
	c context.Context,
	param request.RemoveCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService RemoveCartItem").
		Str(constants.KEY_USER_ID, param.UserId.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	cart, err := s.queries.FindCartByUserId(c, param.UserId)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Str(constants.KEY_CART_ID, cart.ID.String()).Logger()
	logger.Info().Msg("found cart")

	logger = logger.With().Str(constants.KEY_PROCESS, "deleting cart item").Logger()
	logger.Info().Msg("deleting cart item")
	err = s.queries.DeleteCartItem(c, repository.DeleteCartItemParams{
		ID:     param.CartItemId,
		CartID: cart.ID,
	})
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	err = s.queries.TouchCart(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed touching cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("deleted cart item")

	s.invalidateCart(c, param.UserId)

	c = logger.WithContext(c)
	return s.FindCartByUserId(c, param.UserId)
}

func (s CartService) findOrCreateCart(
	c context.Context,
	userId uuid.UUID,
) (response.Cart, error) {
	logger := zerolog.Ctx(c).With().Logger()

	cart, err := s.queries.FindCartByUserId(c, userId)
	if err == nil {
		return cart.Response()
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return response.Cart{}, err
	}

	logger.Info().Msg("cart not found, creating cart")
	created, err := s.queries.InsertCart(c, userId)
	if err != nil {
		return response.Cart{}, fmt.Errorf("failed creating cart with error=%w", err)
	}
	logger.Info().Str(constants.KEY_CART_ID, created.ID.String()).Msg("created cart")

	return response.Cart{
		ID:        created.ID,
		UserID:    created.UserID,
		CartItems: []response.CartItem{},
		CreatedAt: created.CreatedAt.Time,
		UpdatedAt: created.UpdatedAt.Time,
	}, nil
}

func (s CartService) findProduct(
	c context.Context,
	productId uuid.UUID,
) (catalogResponse.Product, error) {
	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		inHttp.CATALOG_BASE_URL+"/"+productId.String(),
		nil,
	)
	if err != nil {
		return catalogResponse.Product{}, err
	}
	req.Header.Add(inHttp.KEY_HEADER_REQUEST_ID, log.RequestIDFromContext(c))
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		return catalogResponse.Product{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return catalogResponse.Product{}, fmt.Errorf(
			"product with id=%s not found",
			productId.String(),
		)
	}

	body := struct {
		Data struct {
			Product catalogResponse.Product `json:"product"`
		} `json:"data"`
	}{}
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return catalogResponse.Product{}, err
	}
	return body.Data.Product, nil
}

func (s CartService) cacheCart(c context.Context, userId uuid.UUID, cart response.Cart) {
	cacheKey := fmt.Sprintf(cache.KEY_CART, userId)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "caching cart").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	cartJson, err := json.Marshal(cart)
	if err != nil {
		err = fmt.Errorf("failed marshalling cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	err = s.cache.Set(c, cacheKey, cartJson, time.Hour).Err()
	if err != nil {
		err = fmt.Errorf("failed caching cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("cached cart")
}

func (s CartService) invalidateCart(c context.Context, userId uuid.UUID) {
	cacheKey := fmt.Sprintf(cache.KEY_CART, userId)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "invalidating cart cache").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	err := s.cache.Del(c, cacheKey).Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating cart cache with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("invalidated cart cache")
}
