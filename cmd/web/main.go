package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decoration_room/internal/config"
	"decoration_room/internal/storage"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger  *zap.Logger
	session *scs.SessionManager
	store   storage.Store
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info(".env não encontrado, usando variáveis de ambiente do sistema")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	addr := flag.String("addr", cfg.Addr, "HTTP network address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeStore()

	session := scs.New()
	session.Store = &storage.SessionStore{Store: store}
	session.Lifetime = cfg.SessionLifetime
	session.Cookie.Name = "decoration_room_session"
	session.Cookie.HttpOnly = true
	session.Cookie.SameSite = http.SameSiteLaxMode

	app := &application{
		logger:  logger,
		session: session,
		store:   store,
	}

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     zap.NewStdLog(logger),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting Decoration Room", zap.String("addr", *addr), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		s, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to sqlite", zap.String("path", cfg.SQLitePath))
		return s, func() { s.Close() }, nil

	case config.BackendMongo:
		s, client, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
		return s, func() { client.Disconnect(context.Background()) }, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
