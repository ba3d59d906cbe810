package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avion/internal/domain/entity"
	domainrepo "avion/internal/domain/repository"
)

func setupCartRepo(t *testing.T) (domainrepo.CartRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCartRepository(client, time.Hour), mr
}

func TestCartRoundtrip(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	cart := &entity.Cart{
		UserID: "user-1",
		Items: []entity.CartItem{
			{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 2},
		},
	}
	require.NoError(t, repo.SaveCart(ctx, cart))

	loaded, err := repo.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "p1", loaded.Items[0].ProductID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestGetCartAbsent(t *testing.T) {
	repo, _ := setupCartRepo(t)

	cart, err := repo.GetCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestGetCartMalformedBlob(t *testing.T) {
	repo, mr := setupCartRepo(t)

	require.NoError(t, mr.Set("cart:user:user-1", "{not json"))

	// A corrupt blob reads as no cart; the next save replaces it
	cart, err := repo.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartExpires(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, &entity.Cart{
		UserID: "user-1",
		Items:  []entity.CartItem{{ProductID: "p1", Quantity: 1}},
	}))

	mr.FastForward(2 * time.Hour)

	cart, err := repo.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestDeleteCart(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCart(ctx, &entity.Cart{
		UserID: "user-1",
		Items:  []entity.CartItem{{ProductID: "p1", Quantity: 1}},
	}))
	require.NoError(t, repo.DeleteCart(ctx, "user-1"))

	cart, err := repo.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, cart)
}
