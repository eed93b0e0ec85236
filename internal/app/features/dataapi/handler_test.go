package dataapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/features/dataapi"
	marketdatastore "github.com/pasarunsri/pasarhub/internal/app/store/marketdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
	"github.com/pasarunsri/pasarhub/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *marketdatastore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := marketdatastore.New(db)
	h := dataapi.NewHandler(store, zap.NewNop())
	return dataapi.Routes(h), store
}

func TestServeGet_SeedsEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertHeader(t, "Content-Type", "application/json")

	var doc models.Document
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(doc.Users) != 6 || len(doc.Listings) != 6 {
		t.Errorf("fresh store should serve the starter dataset, got %d users / %d listings",
			len(doc.Users), len(doc.Listings))
	}
}

func TestServePut_RoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	user := testutil.VerifiedUser()
	doc := models.Document{
		Users:    []models.User{user},
		Listings: []models.Listing{testutil.ListingFor(user, 3)},
	}
	body, _ := json.Marshal(doc)

	rec := testutil.NewRecorder()
	req := testutil.NewRequestWithBody(http.MethodPut, "/", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Data saved successfully.")

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))

	var got models.Document
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Users) != 1 || got.Users[0].NIM != user.NIM {
		t.Errorf("users round-trip: %+v", got.Users)
	}
	if got.Users[0].Password != user.Password {
		t.Errorf("password must round-trip exactly, got %q", got.Users[0].Password)
	}
	if len(got.Listings) != 1 || got.Listings[0].ID != 3 {
		t.Errorf("listings round-trip: %+v", got.Listings)
	}
}

func TestServePut_RejectsMissingArrays(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing users", `{"listings":[]}`},
		{"missing listings", `{"users":[]}`},
		{"empty object", `{}`},
		{"not json", `users=1&listings=2`},
		{"null body", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			req := testutil.NewRequestWithBody(http.MethodPut, "/", bytes.NewReader([]byte(tc.body)))
			router.ServeHTTP(rec, req)

			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, "Invalid data format.")
		})
	}
}

func TestServePut_AcceptsEmptyArrays(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	req := testutil.NewRequestWithBody(http.MethodPut, "/",
		bytes.NewReader([]byte(`{"users":[],"listings":[]}`)))
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, method := range []string{http.MethodPost, http.MethodDelete, http.MethodPatch} {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(method, "/"))

		rec.AssertStatus(t, http.StatusMethodNotAllowed)
		rec.AssertHeader(t, "Allow", "GET, PUT")
	}
}
