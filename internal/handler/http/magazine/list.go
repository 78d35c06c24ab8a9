package magazine

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	magUC "magazine-press/internal/usecase/magazine"
)

type ArticlesHandler struct{ Svc magUC.Service }

// ServeHTTP 雑誌の記事一覧
// @Summary      雑誌の記事一覧
// @Tags         magazines
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Success      200 {array} dto.Article
// @Router       /magazines/{id}/articles [get]
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

type ContributorsHandler struct{ Svc magUC.Service }

// ServeHTTP 寄稿者一覧
// @Summary      寄稿者一覧
// @Description  雑誌に1本以上記事を書いた著者（重複なし）
// @Tags         magazines
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Success      200 {array} dto.Author
// @Router       /magazines/{id}/contributors [get]
func (h ContributorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	authors, err := h.Svc.Contributors(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAuthors(authors))
}

type TitlesHandler struct{ Svc magUC.Service }

// ServeHTTP 記事タイトル一覧
// @Summary      記事タイトル一覧
// @Description  記事がない場合 titles は null
// @Tags         magazines
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Success      200 {object} TitlesResponse
// @Router       /magazines/{id}/titles [get]
func (h TitlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	titles, err := h.Svc.ArticleTitles(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, TitlesResponse{Titles: titles})
}

type ContributingAuthorsHandler struct{ Svc magUC.Service }

// ServeHTTP 主要寄稿者一覧
// @Summary      主要寄稿者一覧
// @Description  雑誌に3本以上記事を書いた著者と記事数。該当者がいない場合は null
// @Tags         magazines
// @Produce      json
// @Param        id path int true "雑誌ID"
// @Success      200 {array} dto.Contributor
// @Router       /magazines/{id}/contributing-authors [get]
func (h ContributingAuthorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	counts, err := h.Svc.ContributingAuthors(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromContributors(counts))
}
