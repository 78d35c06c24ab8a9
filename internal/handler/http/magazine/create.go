package magazine

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	magUC "magazine-press/internal/usecase/magazine"
)

type CreateHandler struct{ Svc magUC.Service }

// ServeHTTP 雑誌の取得または作成
// @Summary      雑誌の取得または作成
// @Description  IDの雑誌が存在しなければ作成します。既存の行は上書きされません
// @Tags         magazines
// @Accept       json
// @Produce      json
// @Param        magazine body createRequest true "雑誌情報"
// @Success      200 {object} dto.Magazine
// @Failure      400 {string} string "Bad request - invalid input"
// @Router       /magazines [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	id, err := entity.RequireID("id", req.ID)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	m, err := h.Svc.LoadOrCreate(r.Context(), magUC.CreateInput{ID: id, Name: req.Name, Category: req.Category})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazine(m))
}
