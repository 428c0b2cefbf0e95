package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"raincast/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", handler(s.getHome))
	r.Post("/predict", handler(s.postPredict))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
