// internal/app/features/dataapi/handler.go
package dataapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	marketdatastore "github.com/pasarunsri/pasarhub/internal/app/store/marketdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Handler serves the whole-document data endpoint. The marketplace dataset
// travels as a single {users, listings} JSON document: GET returns it, PUT
// replaces it wholesale. There are no partial updates.
type Handler struct {
	Store *marketdatastore.Store
	Log   *zap.Logger
}

// NewHandler constructs a data API Handler.
func NewHandler(store *marketdatastore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// putPayload uses pointer slices so a missing field is distinguishable from
// an empty one. A payload without both arrays is rejected.
type putPayload struct {
	Users    *[]models.User    `json:"users"`
	Listings *[]models.Listing `json:"listings"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ServeGet handles GET /api/data. An empty store is seeded with the starter
// dataset before responding, so the first read never returns nothing.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Store.Get(r.Context())
	if err != nil {
		h.Log.Error("data-api: load failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, messageResponse{
			Message: "Failed to load data.",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// ServePut handles PUT /api/data. The body must carry both the users and
// listings arrays; anything else is a 400.
func (h *Handler) ServePut(w http.ResponseWriter, r *http.Request) {
	var payload putPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil ||
		payload.Users == nil || payload.Listings == nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{
			Message: "Invalid data format.",
		})
		return
	}

	doc := models.Document{Users: *payload.Users, Listings: *payload.Listings}
	if err := h.Store.Put(r.Context(), doc); err != nil {
		h.Log.Error("data-api: save failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, messageResponse{
			Message: "Failed to save data.",
			Error:   err.Error(),
		})
		return
	}

	h.Log.Debug("data-api: document replaced",
		zap.Int("users", len(doc.Users)),
		zap.Int("listings", len(doc.Listings)))
	writeJSON(w, http.StatusOK, messageResponse{Message: "Data saved successfully."})
}

// ServeMethodNotAllowed answers anything that is not GET or PUT.
func (h *Handler) ServeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, PUT")
	writeJSON(w, http.StatusMethodNotAllowed, messageResponse{
		Message: "Method not allowed.",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
