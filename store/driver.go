package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"connectfit-backend/config"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open connects the persistence driver named by cfg.StoreDriver. The returned
// closer releases the underlying connection.
func Open(ctx context.Context, cfg *config.AppConfig) (KV, io.Closer, error) {
	switch cfg.StoreDriver {
	case "memory":
		zap.L().Warn("using in-memory persistence, data is lost on restart")
		return NewMemoryKV(), nopCloser, nil
	case "bolt":
		kv, err := OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		zap.L().Info("using bolt persistence", zap.String("path", cfg.BoltPath))
		return kv, kv, nil
	case "mongo":
		client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
		if err != nil {
			return nil, nil, err
		}
		kv := NewMongoKV(client.Database(cfg.MongoDB).Collection("kv"))
		return kv, closerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		}), nil
	case "redis":
		client, err := config.ConnectRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		kv := NewRedisKV(client)
		return kv, kv, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
