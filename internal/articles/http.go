// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/sentra-hq/sentra/internal/platform/request"
	"github.com/sentra-hq/sentra/internal/platform/respond"
	"github.com/sentra-hq/sentra/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.patch)
	router.Delete("/{id}", handler.remove)

	return router
}

type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	items, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	article, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Create(request.Context(), input.Title, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, article)
}

func (handler *Handler) patch(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Patch(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
