package storage

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// ConnectionStringVariable names the environment variable holding the connection string.
	ConnectionStringVariable = "MONGODB_CONN"
	DefaultDatabase          = "accountance_db"
	DefaultConnectTimeout    = 10 * time.Second
)

// Dialer opens a client for uri. The default dialer connects and pings the primary.
type Dialer func(ctx context.Context, uri string) (*mongo.Client, error)

type ConnectionConfig struct {
	// URI is the connection string. When empty it is read from ConnectionStringVariable on every
	// connection attempt.
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Connection lazily opens one client and hands out the connected database handle. It is created once
// at process start and injected into the repositories.
type Connection struct {
	mutex  sync.Mutex
	cfg    ConnectionConfig
	dial   Dialer
	logger *logrus.Logger
	client *mongo.Client
	db     *mongo.Database
}

type ConnectionOption func(*Connection)

// WithDialer replaces the network dialer.
func WithDialer(dial Dialer) ConnectionOption {
	return func(c *Connection) {
		c.dial = dial
	}
}

func NewConnection(cfg ConnectionConfig, logger *logrus.Logger, opts ...ConnectionOption) *Connection {
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Connection{
		cfg:    cfg,
		dial:   dialMongo,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	sharedOnce sync.Once
	shared     *Connection
)

// Shared returns the process-wide Connection configured from the environment, creating it on first use.
func Shared() *Connection {
	sharedOnce.Do(func() {
		shared = NewConnection(ConnectionConfig{}, logrus.StandardLogger())
	})
	return shared
}

func (c *Connection) IsConnected() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.client != nil && c.db != nil
}

// Handle returns the connected database, connecting first when needed. It fails with a
// *ConfigurationError before any network call when no connection string is available, and with a
// *ConnectionError when the connect call fails.
func (c *Connection) Handle(ctx context.Context) (*mongo.Database, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.client != nil && c.db != nil {
		return c.db, nil
	}

	uri := c.cfg.URI
	if uri == "" {
		uri = os.Getenv(ConnectionStringVariable)
	}
	if uri == "" {
		err := &ConfigurationError{Variable: ConnectionStringVariable}
		c.logger.WithError(err).Error("Connection.Handle.missing connection string")
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	client, err := c.dial(dialCtx, uri)
	if err != nil {
		c.logger.WithError(err).WithField("database", c.cfg.Database).Error("Connection.Handle.connect failed")
		return nil, &ConnectionError{Err: err}
	}

	c.client = client
	c.db = client.Database(c.cfg.Database)
	c.logger.WithField("database", c.cfg.Database).Info("Connection.Handle.connected")
	return c.db, nil
}

// Client returns the connected client, connecting first when needed.
func (c *Connection) Client(ctx context.Context) (*mongo.Client, error) {
	if _, err := c.Handle(ctx); err != nil {
		return nil, err
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.client, nil
}

func (c *Connection) DatabaseName() string {
	return c.cfg.Database
}

// Disconnect releases the client. Calling it while not connected only logs a warning.
func (c *Connection) Disconnect(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.client == nil {
		c.logger.Warn("Connection.Disconnect.not connected")
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	if err != nil {
		c.logger.WithError(err).Error("Connection.Disconnect.failed")
		return err
	}
	return nil
}

func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
