// Package article provides HTTP handlers for article endpoints.
package article

import (
	"net/http"

	artUC "magazine-press/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc artUC.Service) {
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("GET /articles/{id}", GetHandler{svc})
	mux.Handle("GET /articles/{id}/author", AuthorHandler{svc})
	mux.Handle("GET /articles/{id}/magazine", MagazineHandler{svc})
	mux.Handle("GET /articles/{id}/detail", DetailHandler{svc})
}
