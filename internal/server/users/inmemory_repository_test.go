package users

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	_, err := r.GetUserByLogin(ctx, "thedude")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	created, err := r.Create(ctx, &User{UserName: "thedude", Password: "h", Name: "Mr. Lebowski"})
	require.NoError(t, err)
	assert.Equal(t, "thedude", created.UserName)

	got, err := r.GetUserByLogin(ctx, "thedude")
	require.NoError(t, err)
	assert.Equal(t, "Mr. Lebowski", got.Name)

	_, err = r.GetUserByLogin(ctx, "TheDude")
	assert.ErrorIs(t, err, common.ErrorNotFound, "lookup is case-sensitive")
}

func TestInMemoryRepository_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	_, err := r.Create(ctx, &User{UserName: "walter", Name: "first"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &User{UserName: "walter", Name: "second"})
	require.NoError(t, err)

	got, err := r.GetUserByLogin(ctx, "walter")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	in := &User{UserName: "donny", Name: "Donny"}
	_, err := r.Create(ctx, in)
	require.NoError(t, err)
	in.Name = "changed"

	got, err := r.GetUserByLogin(ctx, "donny")
	require.NoError(t, err)
	got.Name = "changed again"

	again, err := r.GetUserByLogin(ctx, "donny")
	require.NoError(t, err)
	assert.Equal(t, "Donny", again.Name)
}

func TestInMemoryRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewInMemoryRepository()

	_, err := r.Create(ctx, &User{UserName: "x"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.GetUserByLogin(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Create(ctx, &User{UserName: fmt.Sprintf("u%d", i)})
		}(i)
	}
	wg.Wait()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
