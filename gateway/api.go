package gateway

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alovak/cardflow-gateway/gateway/iso8583"
	"github.com/alovak/cardflow-gateway/gateway/models"
	"github.com/alovak/cardflow-gateway/internal/expiry"
	"github.com/go-chi/chi/v5"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// API is a HTTP API for the gateway service
type API struct {
	gateway      *Service
	maxBodyBytes int64
}

func NewAPI(gateway *Service, config *Config) *API {
	if config == nil {
		config = DefaultConfig()
	}

	return &API{
		gateway:      gateway,
		maxBodyBytes: config.MaxBodyBytes,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/payment-methods/credit-card", func(r chi.Router) {
		r.Post("/fields", a.exportFields)
		r.Post("/iso8583", a.buildISO8583)
	})
}

// ISO8583Response is returned by the iso8583 endpoint.
type ISO8583Response struct {
	MTI     string `json:"mti"`
	Message string `json:"message"` // hex encoded
}

func (a *API) decodeCard(w http.ResponseWriter, r *http.Request) (models.CreditCardRequest, bool) {
	req := models.CreditCardRequest{}
	if a.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.maxBodyBytes)
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// exportFields responds with the gateway fields as JSON, or form encoded
// when the client accepts application/x-www-form-urlencoded.
func (a *API) exportFields(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeCard(w, r)
	if !ok {
		return
	}

	fields := a.gateway.ExportFields(req)

	if strings.Contains(r.Header.Get("Accept"), contentTypeForm) {
		w.Header().Set("Content-Type", contentTypeForm)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fields.Encode()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(fields)
}

func (a *API) buildISO8583(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeCard(w, r)
	if !ok {
		return
	}

	packed, err := a.gateway.BuildISO8583(req)
	if err != nil {
		if errors.Is(err, expiry.ErrInvalidExpiration) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ISO8583Response{
		MTI:     iso8583.MTIAuthorizationRequest,
		Message: hex.EncodeToString(packed),
	})
}
