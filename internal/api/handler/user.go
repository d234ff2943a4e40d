package handler

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/middleware"
	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// UserHandler handles admin user management
type UserHandler struct {
	list   *usecase.GetUsersUsecase
	delete *usecase.DeleteUserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(users domain.UserRepository) *UserHandler {
	return &UserHandler{
		list:   usecase.NewGetUsersUsecase(users),
		delete: usecase.NewDeleteUserUsecase(users),
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.list.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, users)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.delete.Execute(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	response.NoContent(w)
}
