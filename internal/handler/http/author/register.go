// Package author provides HTTP handlers for author endpoints.
package author

import (
	"net/http"

	authorUC "magazine-press/internal/usecase/author"
)

// Register registers all author-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc authorUC.Service) {
	mux.Handle("POST /authors", CreateHandler{svc})
	mux.Handle("GET /authors/{id}", GetHandler{svc})
	mux.Handle("GET /authors/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /authors/{id}/magazines", MagazinesHandler{svc})
}
