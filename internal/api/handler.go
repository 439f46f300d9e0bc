package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/basket-splitter/internal/splitter"
	"github.com/eugenenazirov/basket-splitter/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const (
	maxBodyBytes        = 1 << 20
	defaultSplitTimeout = 2 * time.Second
)

// Handler wires catalog storage and the basket splitter into HTTP handlers.
type Handler struct {
	storage storage.Storage
	logger  *zap.Logger

	splitTimeout     time.Duration
	maxDeliveryTypes int
	clock            func() time.Time

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithLogger sets the logger used for split diagnostics.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSplitTimeout bounds how long a single split may search.
func WithSplitTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.splitTimeout = d
		}
	}
}

// WithMaxDeliveryTypes sets the delivery type limit passed to the splitter.
func WithMaxDeliveryTypes(n int) HandlerOption {
	return func(h *Handler) {
		h.maxDeliveryTypes = n
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage:          store,
		logger:           zap.NewNop(),
		splitTimeout:     defaultSplitTimeout,
		maxDeliveryTypes: splitter.DefaultMaxDeliveryTypes,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.catalogUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	_ = r
	catalog, err := h.storage.GetCatalog()
	if err != nil {
		writeStorageError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.catalogResponse(catalog, ""))
}

func (h *Handler) handlePutCatalog(w http.ResponseWriter, r *http.Request) {
	var mapping map[string][]string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&mapping); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	catalog, err := splitter.NewCatalog(mapping)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
		return
	}

	if err := h.storage.SetCatalog(catalog); err != nil {
		if errors.Is(err, storage.ErrInvalidCatalog) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()
	h.logger.Info("catalog replaced",
		zap.Int("products", catalog.Len()),
		zap.Strings("delivery_types", catalog.Universe()),
		zap.String("request_id", requestIDFromContext(r.Context())),
	)

	writeJSON(w, http.StatusOK, h.catalogResponse(catalog, "Catalog updated successfully"))
}

func (h *Handler) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.Items == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "items must be a list of product names")
		return
	}

	catalog, err := h.storage.GetCatalog()
	if err != nil {
		writeStorageError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.splitTimeout)
	defer cancel()

	start := time.Now()
	s := splitter.New(catalog, splitter.WithMaxDeliveryTypes(h.maxDeliveryTypes))
	result, splitErr := s.Split(ctx, req.Items)
	elapsed := time.Since(start)

	if splitErr != nil {
		h.logger.Warn("split failed",
			zap.Int("items", len(req.Items)),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(splitErr),
		)

		switch {
		case errors.Is(splitErr, splitter.ErrUnknownItem):
			writeError(w, http.StatusBadRequest, "Unknown products", splitErr.Error(),
				"Add the products to the catalog or remove them from the basket")
		case errors.Is(splitErr, splitter.ErrUncoverable):
			writeError(w, http.StatusUnprocessableEntity, "Cannot split basket", splitErr.Error())
		case errors.Is(splitErr, context.DeadlineExceeded):
			writeError(w, http.StatusGatewayTimeout, "Split timed out", "the delivery type search exceeded its deadline",
				"Reduce the number of delivery types in the catalog")
		case errors.Is(splitErr, splitter.ErrConfiguration):
			writeError(w, http.StatusInternalServerError, "Internal error", splitErr.Error())
		default:
			writeInternalError(w, splitErr)
		}
		return
	}

	h.logger.Debug("basket split",
		zap.Int("items", len(req.Items)),
		zap.Strings("delivery_types", result.Types()),
		zap.Duration("elapsed", elapsed),
	)

	resp := splitResponse{
		Groups:            map[string][]string(result),
		DeliveryTypes:     result.Types(),
		Dominant:          result.Dominant(),
		TotalItems:        result.ItemCount(),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) catalogResponse(catalog *splitter.Catalog, message string) catalogResponse {
	return catalogResponse{
		Products:      catalog.Mapping(),
		DeliveryTypes: catalog.Universe(),
		UpdatedAt:     h.currentCatalogUpdatedAt(),
		Message:       message,
	}
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type splitRequest struct {
	Items []string `json:"items"`
}

type splitResponse struct {
	Groups            map[string][]string `json:"groups"`
	DeliveryTypes     []string            `json:"deliveryTypes"`
	Dominant          string              `json:"dominant,omitempty"`
	TotalItems        int                 `json:"totalItems"`
	CalculationTimeMs int64               `json:"calculationTimeMs"`
}

type catalogResponse struct {
	Products      map[string][]string `json:"products"`
	DeliveryTypes []string            `json:"deliveryTypes"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Message       string              `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrCatalogNotLoaded) {
		writeError(w, http.StatusServiceUnavailable, "Catalog unavailable", err.Error())
		return
	}
	writeInternalError(w, err)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
