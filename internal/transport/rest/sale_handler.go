package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	rerrors "github.com/narayanastores/retail/internal/errors"
	"github.com/narayanastores/retail/internal/report"
	"github.com/narayanastores/retail/internal/service"
	"github.com/narayanastores/retail/pkg/web"
)

// SaleHandler serves the sales ledger endpoints.
type SaleHandler struct {
	service  service.LedgerService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSaleHandler creates a new instance of SaleHandler with the provided service.
func NewSaleHandler(service service.LedgerService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the sales ledger.
func (h *SaleHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/export", h.Export)
	})
}

// Create records a sale: stock check, decrement and ledger append happen
// atomically in the service's store.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var saleCreateDto service.SaleCreateDto
	if !decodeAndValidate(w, r, mLogger, h.validate, &saleCreateDto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to record sale", "sale", saleCreateDto)
	sale, err := h.service.Sell(r.Context(), saleCreateDto)
	if err != nil {
		switch {
		case errors.Is(err, rerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for sale", "ProductID", saleCreateDto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", saleCreateDto.ProductID))
		case errors.Is(err, rerrors.ErrInsufficientStock):
			mLogger.WarnContext(r.Context(), "Insufficient stock for sale", "ProductID", saleCreateDto.ProductID, "Quantity", saleCreateDto.Quantity)
			web.RespondError(w, mLogger, http.StatusConflict, "Insufficient stock")
		default:
			mLogger.ErrorContext(r.Context(), "Error recording sale", "ProductID", saleCreateDto.ProductID, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to record sale")
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Sale recorded successfully", "ID", sale.ID, "ProductID", sale.ProductID, "TotalCents", sale.TotalCents)
	web.RespondJSON(w, mLogger, http.StatusCreated, sale)
}

// FindAll retrieves the sales ledger, newest first. The optional limit query
// parameter caps the number of rows; omitted or zero returns everything.
func (h *SaleHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.ParseOptionalGte(r, w, mLogger, "limit", 0, 0)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to list sales", "limit", limit)
	list, err := h.service.FindAll(r.Context(), limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving sales list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved sales list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// Export renders the full ledger as an xlsx workbook.
func (h *SaleHandler) Export(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to export sales")
	list, err := h.service.FindAll(r.Context(), 0)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving sales for export", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	buf, err := report.SalesWorkbook(list)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error building sales workbook", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to build sales report")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	mLogger.InfoContext(r.Context(), "Sales report exported", "rows", len(list))
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *SaleHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
