package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/koberec/eshop/internal/constants"
	orderErrors "github.com/koberec/eshop/order/internal/errors"
	"github.com/koberec/eshop/order/pkg/event"
	"github.com/koberec/eshop/order/pkg/request"
	"github.com/koberec/eshop/order/pkg/status"
)

func TestChangeStatusPaymentConfirmedFiresOnce(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)
	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	pubsub := env.cache.Subscribe(c, constants.CHANNEL_PAYMENT_CONFIRMED)
	defer pubsub.Close()
	if _, err := pubsub.Receive(c); err != nil {
		t.Fatalf("failed subscribing to channel with error: %s", err)
	}
	messages := pubsub.Channel()

	updated, err := env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: order.ID,
		Status:  string(status.Paid),
	})
	assert.NoError(t, err)
	assert.Equal(t, string(status.Paid), updated.Status)

	select {
	case message := <-messages:
		ev := event.PaymentConfirmed{}
		assert.NoError(t, json.Unmarshal([]byte(message.Payload), &ev))
		assert.Equal(t, order.ID, ev.Order.ID)
		assert.Equal(t, string(status.Paid), ev.Order.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("expected payment confirmed event after first transition into paid")
	}

	// a repeated paid update is allowed but must stay silent
	updated, err = env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: order.ID,
		Status:  string(status.Paid),
	})
	assert.NoError(t, err)
	assert.Equal(t, string(status.Paid), updated.Status)

	select {
	case message := <-messages:
		t.Fatalf("unexpected payment confirmed event: %s", message.Payload)
	case <-time.After(time.Second):
	}
}

func TestChangeStatusLifecycle(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)
	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	for _, next := range []status.Status{status.Paid, status.Processing, status.Shipped, status.Delivered} {
		updated, err := env.service.ChangeStatus(c, request.ChangeOrderStatus{
			OrderId: order.ID,
			Status:  string(next),
		})
		assert.NoError(t, err)
		assert.Equal(t, string(next), updated.Status)
	}

	_, err = env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: order.ID,
		Status:  string(status.Cancelled),
	})
	assert.ErrorIs(t, err, orderErrors.ErrIllegalTransition, "delivered is terminal")
}

func TestChangeStatusRejectsIllegalTransition(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)
	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	_, err = env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: order.ID,
		Status:  string(status.Shipped),
	})
	assert.ErrorIs(t, err, orderErrors.ErrIllegalTransition)

	_, err = env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: order.ID,
		Status:  "unknown",
	})
	assert.ErrorIs(t, err, orderErrors.ErrIllegalTransition)

	found, err := env.service.FindOrderById(c, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(status.New), found.Status, "rejected transition must not change the order")
}

func TestChangeStatusOrderNotFound(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: uuid.New(),
		Status:  string(status.Paid),
	})
	assert.ErrorIs(t, err, orderErrors.ErrOrderNotFound)
}

func TestFindOrders(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	alice := seedUser(t, c, env.queries)
	bob := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)

	seedCart(t, c, env.queries, alice.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)
	aliceOrder, err := env.service.Checkout(c, checkoutRequest(alice.ID))
	assert.NoError(t, err)

	seedCart(t, c, env.queries, bob.ID,
		seedItem{product: shirt, color: "blue", size: 0, quantity: 2},
	)
	bobOrder, err := env.service.Checkout(c, checkoutRequest(bob.ID))
	assert.NoError(t, err)

	_, err = env.service.ChangeStatus(c, request.ChangeOrderStatus{
		OrderId: bobOrder.ID,
		Status:  string(status.Paid),
	})
	assert.NoError(t, err)

	all, err := env.service.FindOrders(c, request.FindOrders{Offset: 0, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := env.service.FindOrders(c, request.FindOrders{
		UserId: uuid.NullUUID{UUID: alice.ID, Valid: true},
		Offset: 0,
		Limit:  10,
	})
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, aliceOrder.ID, mine[0].ID)

	paid, err := env.service.FindOrders(c, request.FindOrders{
		Status: string(status.Paid),
		Offset: 0,
		Limit:  10,
	})
	assert.NoError(t, err)
	assert.Len(t, paid, 1)
	assert.Equal(t, bobOrder.ID, paid[0].ID)

	_, err = env.service.FindOrders(c, request.FindOrders{Status: "unknown", Offset: 0, Limit: 10})
	assert.Error(t, err)
}
