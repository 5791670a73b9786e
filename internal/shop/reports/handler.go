package reports

import (
	"log/slog"
	"net/http"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// Handler exposes the /q report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Where(w http.ResponseWriter, r *http.Request) {
	customerID, err := httpx.QueryInt64(r, "customer_id")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	minQty, err := httpx.QueryInt64(r, "min_qty")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	maxPrice, err := httpx.QueryFloat(r, "max_price")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	items, err := h.service.FilterByCustomerQuantityPrice(r.Context(), customerID, minQty, maxPrice)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.JoinedView(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) GroupBy(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.AggregateByCustomer(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	by := httpx.QueryString(r, "by", DefaultSortBy)
	order := httpx.QueryString(r, "order", DefaultSortOrder)
	items, err := h.service.SortedPurchases(r.Context(), by, order)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// Discount applies a percentage reduction to matching purchases.
func (h *Handler) Discount(w http.ResponseWriter, r *http.Request) {
	customerID, err := httpx.QueryInt64(r, "customer_id")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	minQty, err := httpx.QueryInt64(r, "min_qty")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	percent, err := httpx.QueryFloat(r, "percent")
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	res, err := h.service.ApplyPercentDiscount(r.Context(), customerID, minQty, percent)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
