package article

import (
	"net/http"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/handler/http/respond"
	artUC "magazine-press/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。同じ内容でも常に新しい行を追加します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body createRequest true "記事情報"
// @Success      201 {object} dto.Article
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	authorID, err := entity.RequireID("author_id", req.AuthorID)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	magazineID, err := entity.RequireID("magazine_id", req.MagazineID)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		MagazineID: magazineID,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.FromArticle(a))
}
