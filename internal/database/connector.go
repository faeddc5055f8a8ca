package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo dials the portfolio database and verifies the connection with
// a ping before any repository is built on it. Used as the Connector's
// default dial; tests substitute their own.
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Connector guards process-wide connection establishment. Lifecycle:
// uninitialized -> connecting -> ready. Concurrent early callers block on the
// one in-flight attempt instead of racing independent dials; a failed attempt
// resets to uninitialized so the next caller retries.

type State int

const (
	StateUninitialized State = iota
	StateConnecting
	StateReady
)

type dialFunc func(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error)

type Connector struct {
	uri     string
	dbName  string
	timeout time.Duration
	dial    dialFunc

	mu     sync.Mutex
	cond   *sync.Cond
	state  State
	client *mongo.Client
}

func NewConnector(uri, dbName string, timeout time.Duration) *Connector {
	c := &Connector{uri: uri, dbName: dbName, timeout: timeout, dial: ConnectMongo}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// DB returns the database handle, dialing on first use.
func (c *Connector) DB(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	for c.state == StateConnecting {
		c.cond.Wait()
	}
	if c.state == StateReady {
		db := c.client.Database(c.dbName)
		c.mu.Unlock()
		return db, nil
	}
	c.state = StateConnecting
	c.mu.Unlock()

	client, err := c.dial(ctx, c.uri, c.timeout)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateUninitialized
		c.cond.Broadcast()
		return nil, err
	}
	c.client = client
	c.state = StateReady
	c.cond.Broadcast()
	return c.client.Database(c.dbName), nil
}

func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close disconnects the underlying client when one was established.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.state = StateUninitialized
	return err
}
