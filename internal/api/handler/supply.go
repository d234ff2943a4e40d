package handler

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/usecase"
)

// SupplyHandler serves the read-only supply catalogue
type SupplyHandler struct {
	list *usecase.GetSuppliesUsecase
}

func NewSupplyHandler(supplies domain.SupplyRepository) *SupplyHandler {
	return &SupplyHandler{list: usecase.NewGetSuppliesUsecase(supplies)}
}

func (h *SupplyHandler) List(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.list.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, supplies)
}
