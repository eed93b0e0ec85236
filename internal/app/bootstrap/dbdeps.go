// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	marketdatastore "github.com/pasarunsri/pasarhub/internal/app/store/marketdata"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/system/workers"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as your app evolves.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// DataStore is the single-document marketplace store.
	DataStore *marketdatastore.Store

	// Registry holds the per-session engines; Cleanup evicts idle ones.
	Registry *market.Registry
	Cleanup  *workers.EngineCleanup
}
