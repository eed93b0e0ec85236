package bootstrap

import (
	"context"
	"testing"

	"go.uber.org/zap"

	marketdata "github.com/pasarunsri/pasarhub/internal/app/store/marketdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
	"github.com/pasarunsri/pasarhub/internal/testutil"
)

func TestSeedIfEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := marketdata.New(db)
	deps := DBDeps{DataStore: store}
	ctx := context.Background()

	if err := seedIfEmpty(ctx, deps, zap.NewNop()); err != nil {
		t.Fatalf("seedIfEmpty: %v", err)
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("fresh deployment should be seeded")
	}

	doc, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(doc.Users) == 0 || len(doc.Listings) == 0 {
		t.Errorf("seeded %d users / %d listings, want both non-empty", len(doc.Users), len(doc.Listings))
	}
}

func TestSeedIfEmpty_LeavesExistingDataAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := marketdata.New(db)
	deps := DBDeps{DataStore: store}
	ctx := context.Background()

	existing := models.Document{
		Users:    []models.User{{Name: "Satu-satunya", NIM: "09011282399900"}},
		Listings: []models.Listing{},
	}
	if err := store.Put(ctx, existing); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := seedIfEmpty(ctx, deps, zap.NewNop()); err != nil {
		t.Fatalf("seedIfEmpty: %v", err)
	}

	doc, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(doc.Users) != 1 || doc.Users[0].NIM != "09011282399900" {
		t.Errorf("existing document was replaced: %d users", len(doc.Users))
	}
}
