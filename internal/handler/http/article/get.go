package article

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	artUC "magazine-press/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} dto.Article
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromArticle(a))
}

// load resolves the {id} path value to a stored article, writing the error
// response itself when it cannot.
func (h GetHandler) load(w http.ResponseWriter, r *http.Request) (*entity.Article, bool) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return nil, false
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return nil, false
	}
	return a, true
}

type AuthorHandler struct{ Svc artUC.Service }

// ServeHTTP 記事の著者取得
// @Summary      記事の著者取得
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} dto.Author
// @Failure      404 {string} string "Not found - article or author not found"
// @Router       /articles/{id}/author [get]
func (h AuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, ok := GetHandler(h).load(w, r)
	if !ok {
		return
	}
	author, err := h.Svc.Author(r.Context(), a)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAuthor(author))
}

type MagazineHandler struct{ Svc artUC.Service }

// ServeHTTP 記事の掲載誌取得
// @Summary      記事の掲載誌取得
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} dto.Magazine
// @Failure      404 {string} string "Not found - article or magazine not found"
// @Router       /articles/{id}/magazine [get]
func (h MagazineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, ok := GetHandler(h).load(w, r)
	if !ok {
		return
	}
	m, err := h.Svc.Magazine(r.Context(), a)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazine(m))
}

type DetailHandler struct{ Svc artUC.Service }

// ServeHTTP 記事と参照先の一括取得
// @Summary      記事と参照先の一括取得
// @Description  記事・著者・掲載誌をまとめて返します。参照先が存在しない場合は404
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} dto.ArticleDetail
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article, author or magazine not found"
// @Router       /articles/{id}/detail [get]
func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := entity.ParseID("id", r.PathValue("id"))
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	d, err := h.Svc.Detail(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromArticleDetail(d.Article, d.Author, d.Magazine))
}
