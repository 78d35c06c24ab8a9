// Package magazine provides HTTP handlers for magazine endpoints, including
// the contributor and title queries.
package magazine

import (
	"net/http"

	magUC "magazine-press/internal/usecase/magazine"
)

// Register registers all magazine-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc magUC.Service) {
	mux.Handle("POST /magazines", CreateHandler{svc})
	mux.Handle("GET /magazines/{id}", GetHandler{svc})
	mux.Handle("PUT /magazines/{id}", UpdateHandler{svc})
	mux.Handle("GET /magazines/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /magazines/{id}/contributors", ContributorsHandler{svc})
	mux.Handle("GET /magazines/{id}/titles", TitlesHandler{svc})
	mux.Handle("GET /magazines/{id}/contributing-authors", ContributingAuthorsHandler{svc})
}
