package author

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	authorUC "magazine-press/internal/usecase/author"
)

type ArticlesHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者の記事一覧
// @Summary      著者の記事一覧
// @Tags         authors
// @Produce      json
// @Param        id path int true "著者ID"
// @Success      200 {array} dto.Article
// @Failure      400 {string} string "Bad request - invalid author ID"
// @Router       /authors/{id}/articles [get]
func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	articles, err := h.Svc.Articles(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromArticles(articles))
}

type MagazinesHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者が寄稿した雑誌一覧
// @Summary      著者が寄稿した雑誌一覧
// @Tags         authors
// @Produce      json
// @Param        id path int true "著者ID"
// @Success      200 {array} dto.Magazine
// @Failure      400 {string} string "Bad request - invalid author ID"
// @Router       /authors/{id}/magazines [get]
func (h MagazinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	magazines, err := h.Svc.Magazines(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazines(magazines))
}
