package author

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	authorUC "magazine-press/internal/usecase/author"
)

type GetHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者取得
// @Summary      著者取得
// @Tags         authors
// @Produce      json
// @Param        id path int true "著者ID"
// @Success      200 {object} dto.Author
// @Failure      400 {string} string "Bad request - invalid author ID"
// @Failure      404 {string} string "Not found - author not found"
// @Router       /authors/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAuthor(a))
}
