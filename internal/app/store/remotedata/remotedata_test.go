package remotedata_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pasarunsri/pasarhub/internal/app/store/remotedata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
	"github.com/pasarunsri/pasarhub/internal/testutil"
)

func TestGateway_Load(t *testing.T) {
	user := testutil.VerifiedUser()
	want := models.Document{
		Users:    []models.User{user},
		Listings: []models.Listing{testutil.ListingFor(user, 5)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := remotedata.New(srv.URL, nil)
	got, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Users) != 1 || got.Users[0].NIM != user.NIM {
		t.Errorf("users = %+v", got.Users)
	}
	if len(got.Listings) != 1 || got.Listings[0].ID != 5 {
		t.Errorf("listings = %+v", got.Listings)
	}
}

func TestGateway_Load_NormalizesOldDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A stored document from before the location/isFlagged fields.
		_, _ = w.Write([]byte(`{"users":[],"listings":[{"id":1,"sellerId":"x","title":"t","price":1,` +
			`"category":"Buku","condition":"Baru","imageUrl":"","seller":{"name":"n","faculty":"FT","isVerified":false},` +
			`"description":"d","dateListed":"2024-01-01"}]}`))
	}))
	defer srv.Close()

	g := remotedata.New(srv.URL, nil)
	got, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	l := got.Listings[0]
	if l.Location != models.LocationIndralaya {
		t.Errorf("location = %q, want Indralaya default", l.Location)
	}
	if l.IsFlagged {
		t.Error("missing isFlagged should decode to false")
	}
}

func TestGateway_Load_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := remotedata.New(srv.URL, nil)
	if _, err := g.Load(context.Background()); err == nil {
		t.Fatal("non-200 load should be an error")
	}
}

func TestGateway_Load_Unreachable(t *testing.T) {
	g := remotedata.New("http://127.0.0.1:1/api/data", nil)
	if _, err := g.Load(context.Background()); err == nil {
		t.Fatal("unreachable endpoint should be an error")
	}
}

func TestGateway_Save(t *testing.T) {
	var received models.Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":"Data saved successfully."}`))
	}))
	defer srv.Close()

	user := testutil.VerifiedUser()
	doc := models.Document{
		Users:    []models.User{user},
		Listings: []models.Listing{testutil.ListingFor(user, 9)},
	}

	g := remotedata.New(srv.URL, nil)
	if err := g.Save(context.Background(), doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(received.Users) != 1 || received.Users[0].Password != user.Password {
		t.Errorf("saved users = %+v", received.Users)
	}
	if len(received.Listings) != 1 {
		t.Errorf("saved listings = %+v", received.Listings)
	}
}

func TestGateway_Save_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid data format."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	g := remotedata.New(srv.URL, nil)
	if err := g.Save(context.Background(), models.Document{}); err == nil {
		t.Fatal("non-200 save should be an error")
	}
}
