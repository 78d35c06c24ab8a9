package magazine

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	magUC "magazine-press/internal/usecase/magazine"
)

type GetHandler struct{ Svc magUC.Service }

// ServeHTTP 雑誌取得
// @Summary      雑誌取得
// @Tags         magazines
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Success      200 {object} dto.Magazine
// @Failure      404 {string} string "Not found - magazine not found"
// @Router       /magazines/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	m, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazine(m))
}
