package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newDetachedClient returns a client handle without performing any I/O
// (mongo.Connect does not dial until an operation runs).
func newDetachedClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return client
}

func TestConnectorSingleDialAcrossConcurrentCallers(t *testing.T) {
	client := newDetachedClient(t)
	defer client.Disconnect(context.Background())

	var dials int32
	c := NewConnector("mongodb://localhost:27017", "portfolio", time.Second)
	c.dial = func(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		time.Sleep(20 * time.Millisecond) // hold callers in the connecting state
		return client, nil
	}

	require.Equal(t, StateUninitialized, c.State())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := c.DB(context.Background())
			require.NoError(t, err)
			require.Equal(t, "portfolio", db.Name())
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&dials))
	require.Equal(t, StateReady, c.State())
}

func TestConnectorFailedAttemptResetsAndRetries(t *testing.T) {
	client := newDetachedClient(t)
	defer client.Disconnect(context.Background())

	var dials int32
	c := NewConnector("mongodb://localhost:27017", "portfolio", time.Second)
	c.dial = func(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
		if atomic.AddInt32(&dials, 1) == 1 {
			return nil, errors.New("dial failed")
		}
		return client, nil
	}

	_, err := c.DB(context.Background())
	require.Error(t, err)
	require.Equal(t, StateUninitialized, c.State())

	db, err := c.DB(context.Background())
	require.NoError(t, err)
	require.Equal(t, "portfolio", db.Name())
	require.Equal(t, StateReady, c.State())
	require.Equal(t, int32(2), atomic.LoadInt32(&dials))
}
