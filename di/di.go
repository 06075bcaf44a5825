// Package di holds the providers shared by every service injector.
package di

import (
	"context"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/jwt"
	"tourism/infras/kafka"
	"tourism/infras/otel"
	"tourism/infras/postgres"
	"tourism/infras/redis"
	"tourism/shared/cache"
	"tourism/transport/http"
	"tourism/transport/http/middleware"
)

var Infrastructures = wire.NewSet(
	ProvidePostgres,
	ProvideOtel,
	ProvideRedis,
	jwt.New,
)

var Middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var SharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var Transport = wire.NewSet(
	http.New,
)

func ProvidePostgres(cfg *config.Config) (*postgres.Connection, func(), error) {
	db, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close postgres connection")
		}
	}, nil
}

func ProvideRedis(cfg *config.Config) (*goRedis.Client, func(), error) {
	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}, nil
}

func ProvideOtel(cfg *config.Config) (otel.Otel, func(), error) {
	ot, err := otel.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return ot, func() {
		if err := ot.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracer provider")
		}
	}, nil
}

func ProvideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka client")
		}
	}
}
