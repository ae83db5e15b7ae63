package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/koberec/eshop/catalog/internal/cache"
	"github.com/koberec/eshop/catalog/internal/otel"
	"github.com/koberec/eshop/catalog/pkg/request"
	"github.com/koberec/eshop/catalog/pkg/response"
	"github.com/koberec/eshop/internal/constants"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *ProductService {
	return &ProductService{pool: pool, queries: queries, cache: cache}
}

func (s ProductService) CreateProduct(
	c context.Context,
	param request.CreateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService CreateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ProductService CreateProduct").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting product").Logger()
	logger.Info().Msg("inserting product")
	product, err := s.queries.InsertProduct(c, repository.InsertProductParams{
		Name:        param.Name,
		Url:         Slugify(param.Name),
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Price: pgtype.Numeric{
			Exp:              param.Price.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              param.Price.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
		Quantity: param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(constants.KEY_PRODUCT_ID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product")

	res := product.Response()
	s.cacheProduct(c, res)

	return res, nil
}

func (s ProductService) UpdateProduct(
	c context.Context,
	param request.UpdateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ProductService UpdateProduct").
		Str(constants.KEY_PRODUCT_ID, param.ID.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "updating product").Logger()
	logger.Info().Msg("updating product")
	product, err := s.queries.UpdateProduct(c, repository.UpdateProductParams{
		ID:          param.ID,
		Name:        param.Name,
		Url:         Slugify(param.Name),
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Price: pgtype.Numeric{
			Exp:              param.Price.Exponent(),
			InfinityModifier: pgtype.Finite,
			Int:              param.Price.Coefficient(),
			NaN:              false,
			Valid:            true,
		},
		Quantity: param.Quantity,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed updating product with error=%w", ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed updating product with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("updated product")

	res := product.Response()
	s.cacheProduct(c, res)

	return res, nil
}

func (s ProductService) DeleteProduct(c context.Context, productId uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "ProductService DeleteProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ProductService DeleteProduct").
		Str(constants.KEY_PRODUCT_ID, productId.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "deleting product").Logger()
	logger.Info().Msg("deleting product")
	err := s.queries.DeleteProduct(c, productId)
	if err != nil {
		err = fmt.Errorf("failed deleting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted product")

	cacheKey := fmt.Sprintf(cache.KEY_PRODUCT, productId)
	err = s.cache.Del(c, cacheKey).Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating product cache with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
	}

	return nil
}

// FindProductById accepts either a product id or its url slug.
func (s ProductService) FindProductById(
	c context.Context,
	idOrUrl string,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KEY_PRODUCT, idOrUrl)
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ProductService FindProductById").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding product in cache").Logger()
	logger.Info().Msg("finding product in cache")
	cached, err := s.cache.Get(c, cacheKey).Result()
	if err == nil {
		res := response.Product{}
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			logger.Info().Msg("found product in cache")
			return res, nil
		}
	}
	logger.Info().Msg("product not found in cache")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding product").Logger()
	logger.Info().Msg("finding product")
	var product repository.Product
	if productId, parseErr := uuid.Parse(idOrUrl); parseErr == nil {
		product, err = s.queries.FindProductById(c, productId)
	} else {
		product, err = s.queries.FindProductByUrl(c, idOrUrl)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding product with error=%w", ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding product with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product")

	res := product.Response()
	s.cacheProduct(c, res)

	return res, nil
}

func (s ProductService) FindProducts(
	c context.Context,
	param request.FindProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "ProductService FindProducts").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding products").Logger()
	logger.Info().Msg("finding products")
	products, err := s.queries.FindProducts(c, repository.FindProductsParams{
		Offset: param.Offset,
		Limit:  param.Limit,
	})
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found products")

	res := make([]response.Product, 0, len(products))
	for _, product := range products {
		res = append(res, product.Response())
	}

	return res, nil
}

func (s ProductService) cacheProduct(c context.Context, product response.Product) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_PROCESS, "caching product").
		Logger()

	productJson, err := json.Marshal(product)
	if err != nil {
		err = fmt.Errorf("failed marshalling product with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	for _, key := range []string{product.ID.String(), product.Url} {
		cacheKey := fmt.Sprintf(cache.KEY_PRODUCT, key)
		err = s.cache.Set(c, cacheKey, productJson, time.Hour).Err()
		if err != nil {
			err = fmt.Errorf("failed caching product with error=%w", err)
			logger.Error().Err(err).Str(constants.KEY_CACHE_KEY, cacheKey).Msg(err.Error())
		}
	}
}

// Slugify derives the url slug of a product from its name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
