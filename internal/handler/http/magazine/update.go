package magazine

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	magUC "magazine-press/internal/usecase/magazine"
)

type UpdateHandler struct{ Svc magUC.Service }

// ServeHTTP 雑誌更新
// @Summary      雑誌更新
// @Description  名前とカテゴリを変更します。省略したフィールドは変更されません
// @Tags         magazines
// @Accept       json
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Param        magazine body updateRequest true "変更内容"
// @Success      200 {object} dto.Magazine
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - magazine not found"
// @Router       /magazines/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	var req updateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}

	m, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	if req.Name != nil {
		if err := m.SetName(*req.Name); err != nil {
			respond.DomainError(w, r, err)
			return
		}
	}
	if req.Category != nil {
		if err := m.SetCategory(*req.Category); err != nil {
			respond.DomainError(w, r, err)
			return
		}
	}
	if err := h.Svc.Save(r.Context(), m); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazine(m))
}
