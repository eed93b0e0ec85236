// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/state"
	marketdatastore "github.com/pasarunsri/pasarhub/internal/app/store/marketdata"
	"github.com/pasarunsri/pasarhub/internal/app/store/remotedata"
	"github.com/pasarunsri/pasarhub/internal/app/system/timeouts"
	"github.com/pasarunsri/pasarhub/internal/app/system/workers"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// ConnectDB connects to MongoDB and builds the backend dependencies: the
// document store, the engine registry, and the cleanup worker.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Connect())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	store := marketdatastore.New(db)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		DataStore:     store,
	}

	deps.Registry = market.NewRegistry(engineFactory(appCfg, store, logger))
	deps.Cleanup = workers.NewEngineCleanup(
		deps.Registry, logger, appCfg.EngineCleanupInterval, appCfg.EngineIdle)

	return deps, nil
}

// engineFactory builds one session engine: a debounced state store wired to
// the persistence backend, initialized from the stored document. A failed
// load falls back to seed data inside Initialize; the factory never fails.
// A failed save is logged and raised as a toast on the owning session, then
// dropped; there is no retry.
func engineFactory(appCfg AppConfig, store *marketdatastore.Store, logger *zap.Logger) func() *market.Service {
	loader, save := persistence(appCfg, store, logger)

	return func() *market.Service {
		var notif *state.Notifier

		st := state.New(func(doc models.Document) {
			if err := save(doc); err != nil {
				logger.Error("data save failed", zap.Error(err))
				notif.Error("Gagal menyimpan perubahan ke server.")
			}
		}, appCfg.SaveDelay, logger)

		svc := market.NewService(st, market.Config{
			AdminLoginID:  appCfg.AdminLoginID,
			AdminPassword: appCfg.AdminPassword,
		}, logger)
		notif = svc.Notif

		// The render subscriber slot. GET / re-derives the page from a
		// snapshot on demand, so the server-side subscriber only traces
		// transitions for debugging.
		st.Subscribe(func() {
			logger.Debug("state changed", zap.String("view", string(st.State().CurrentView)))
		})

		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Load())
		defer cancel()
		svc.Initialize(ctx, loader)
		return svc
	}
}

// persistence picks the backend: the remote data endpoint when configured,
// the local document store otherwise.
func persistence(appCfg AppConfig, store *marketdatastore.Store, logger *zap.Logger) (market.Loader, func(models.Document) error) {
	if appCfg.DataAPIURL != "" {
		gw := remotedata.New(appCfg.DataAPIURL, logger)
		save := func(doc models.Document) error {
			ctx, cancel := context.WithTimeout(context.Background(), timeouts.Save())
			defer cancel()
			return gw.Save(ctx, doc)
		}
		return gw, save
	}

	save := func(doc models.Document) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Save())
		defer cancel()
		return store.Put(ctx, doc)
	}
	return storeLoader{store}, save
}

// storeLoader adapts the document store to the engine loader interface.
type storeLoader struct {
	s *marketdatastore.Store
}

func (l storeLoader) Load(ctx context.Context) (models.Document, error) {
	return l.s.Get(ctx)
}

// EnsureSchema sets up indexes needed by the document store.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	_, err := deps.MongoDatabase.Collection("market_data").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	if err != nil {
		return fmt.Errorf("ensure market_data index: %w", err)
	}
	return nil
}
