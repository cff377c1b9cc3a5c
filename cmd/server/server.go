package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KirkDiggler/minimposter/internal/common/clock"
	"github.com/KirkDiggler/minimposter/internal/common/logger"
	"github.com/KirkDiggler/minimposter/internal/common/uuid"
	"github.com/KirkDiggler/minimposter/internal/handlers/discord"
	"github.com/KirkDiggler/minimposter/internal/handlers/rest"
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
	roomRepo "github.com/KirkDiggler/minimposter/internal/repositories/room"
	wordsRepo "github.com/KirkDiggler/minimposter/internal/repositories/words"
	"github.com/KirkDiggler/minimposter/internal/services/messaging"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

func newRedisClient(ctx context.Context, cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func newLogger(cfg *Config) (zerolog.Logger, error) {
	return logger.New(&logger.Config{
		Level: cfg.logLevel,
		JSON:  cfg.logJSON,
	})
}

// serve runs the HTTP API, the optional Discord bot and the stale room reaper until interrupted
func serve(ctx context.Context, cfg *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	redisClient, err := newRedisClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create room repository: %w", err)
	}

	words, err := wordsRepo.NewRedis(&wordsRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create word bank: %w", err)
	}

	language := models.Language(cfg.language)
	rnd := random.New(&random.Config{})
	clk := clock.New()

	roomSvc, err := room.New(&room.Config{
		RoomRepo:      rooms,
		WordsRepo:     words,
		Random:        rnd,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Language:      language,
		Logger:        log.With().Str("component", "room").Logger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create room service: %w", err)
	}

	handler, err := rest.NewHandler(&rest.HandlerConfig{
		RoomService: roomSvc,
		Logger:      log.With().Str("component", "http").Logger(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		Handler: rest.NewRouter(&rest.RouterConfig{
			Handler:        handler,
			AllowedOrigins: cfg.allowedOrigins,
			Logger:         log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	if cfg.discordToken != "" {
		msgSvc, err := messaging.NewService(&messaging.ServiceConfig{
			Language: language,
			Random:   rnd,
		})
		if err != nil {
			return err
		}

		bot, err := discord.New(&discord.Config{
			Token:         cfg.discordToken,
			ApplicationID: cfg.discordApplicationID,
			GuildID:       cfg.discordGuildID,
			RoomService:   roomSvc,
			Messaging:     msgSvc,
			Clock:         clk,
			TimerInterval: cfg.timerInterval,
			Logger:        log,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}
		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				log.Warn().Err(err).Msg("error stopping bot")
			}
		}()
	}

	go runReaper(ctx, roomSvc, cfg.reapInterval, cfg.maxIdle, log)

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", releaseVersion).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errs:
		return fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}

	log.Info().Msg("shut down")
	return nil
}

// runReaper deletes rooms idle longer than maxIdle every interval until ctx is done
func runReaper(ctx context.Context, svc room.Service, interval, maxIdle time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := svc.ReapStaleRooms(ctx, &room.ReapStaleRoomsInput{MaxIdle: maxIdle})
			if err != nil {
				log.Warn().Err(err).Msg("failed to reap stale rooms")
				continue
			}
			if len(out.Codes) > 0 {
				log.Info().Strs("rooms", out.Codes).Msg("reaped stale rooms")
			}
		}
	}
}
