package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/koberec/eshop/internal/repository"
)

type testEnv struct {
	pool           *pgxpool.Pool
	cache          *redis.Client
	pgContainer    *postgres.PostgresContainer
	redisContainer *testRedis.RedisContainer
	queries        *repository.Queries
	service        *OrderService
}

func setup(t *testing.T, c context.Context) testEnv {
	t.Helper()

	migrations := []string{}
	for _, m := range []string{
		"000001_create_users_table.up.sql",
		"000002_create_products_table.up.sql",
		"000003_create_carts_table.up.sql",
		"000004_create_cart_items_table.up.sql",
		"000005_create_orders_table.up.sql",
		"000006_create_order_items_table.up.sql",
	} {
		migrations = append(migrations, filepath.Join("..", "..", "..", "migrations", m))
	}

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(migrations...),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgxpool config with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed pinging postgres pool with error: %s", err)
	}

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed pinging redis client with error: %s", err)
	}

	queries := repository.New(pool)
	return testEnv{
		pool:           pool,
		cache:          redisClient,
		pgContainer:    pgContainer,
		redisContainer: redisContainer,
		queries:        queries,
		service:        NewOrderService(pool, queries, redisClient),
	}
}

func teardown(t *testing.T, env testEnv) {
	t.Helper()
	env.cache.Close()
	env.pool.Close()
	if err := testcontainers.TerminateContainer(env.pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(env.redisContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Int:              d.Coefficient(),
		NaN:              false,
		Valid:            true,
	}
}

func seedUser(t *testing.T, c context.Context, queries *repository.Queries) repository.User {
	t.Helper()
	user, err := queries.InsertUser(c, repository.InsertUserParams{
		Name:     "Test User",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "hashed-password",
		Role:     "customer",
	})
	if err != nil {
		t.Fatalf("failed seeding user with error: %s", err)
	}
	return user
}

func seedProduct(
	t *testing.T,
	c context.Context,
	queries *repository.Queries,
	name string,
	price int64,
) repository.Product {
	t.Helper()
	product, err := queries.InsertProduct(c, repository.InsertProductParams{
		Name:     name,
		Url:      uuid.NewString(),
		Price:    numeric(decimal.NewFromInt(price)),
		Quantity: 100,
	})
	if err != nil {
		t.Fatalf("failed seeding product with error: %s", err)
	}
	return product
}

type seedItem struct {
	product  repository.Product
	color    string
	size     int32
	quantity int32
}

func seedCart(
	t *testing.T,
	c context.Context,
	queries *repository.Queries,
	userId uuid.UUID,
	items ...seedItem,
) repository.Cart {
	t.Helper()
	cart, err := queries.InsertCart(c, userId)
	if err != nil {
		t.Fatalf("failed seeding cart with error: %s", err)
	}
	for _, item := range items {
		_, err = queries.UpsertCartItem(c, repository.UpsertCartItemParams{
			CartID:    cart.ID,
			ProductID: item.product.ID,
			Color:     item.color,
			Size:      item.size,
			Quantity:  item.quantity,
			Price:     item.product.Price,
		})
		if err != nil {
			t.Fatalf("failed seeding cart item with error: %s", err)
		}
	}
	return cart
}
