package author

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	authorUC "magazine-press/internal/usecase/author"
)

type CreateHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者の取得または作成
// @Summary      著者の取得または作成
// @Description  IDの著者が存在しなければ作成します。既存の行は上書きされず、保存済みの著者を返します
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        author body createRequest true "著者情報"
// @Success      200 {object} dto.Author
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /authors [post]
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

	a, err := h.Svc.LoadOrCreate(r.Context(), authorUC.CreateInput{ID: id, Name: req.Name})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAuthor(a))
}
