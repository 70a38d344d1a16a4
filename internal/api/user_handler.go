// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/deanw-dev/accounts-api/internal/api/shared"
	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/deanw-dev/accounts-api/internal/platform/cpf"
	"github.com/deanw-dev/accounts-api/internal/platform/logger"
	"github.com/deanw-dev/accounts-api/internal/redact"
	"github.com/deanw-dev/accounts-api/internal/store"
)

// UserHandler handles user account HTTP requests.
type UserHandler struct {
	userStore    store.UserStore
	cpfValidator cpf.Validator
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	cpfValidator cpf.Validator,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userStore:    userStore,
		cpfValidator: cpfValidator,
		logger:       log.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users requests.
// It returns every user record, passwords omitted, in storage order.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.GetAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetUser handles GET /users/{id} requests.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// A malformed identifier cannot match any record.
	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid user id in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// CreateUser handles POST /users requests.
// Rejections apply in a fixed order: field presence, CPF checksum,
// password policy, then email/CPF uniqueness.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequestFormat)
		return
	}

	if req.Name == "" || req.Email == "" || req.CPF == "" || req.Password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgAllFieldsRequired)
		return
	}

	if !h.cpfValidator.IsValid(req.CPF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidCPF)
		return
	}
	// The validator accepts both bare and punctuated forms; everything past
	// this point works with the canonical 11 digits so uniqueness holds
	// regardless of how the document was typed.
	req.CPF = cpf.Normalize(req.CPF)

	if err := domain.ValidatePassword(req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgWeakPassword)
		return
	}

	_, err := h.userStore.GetByEmailOrCPF(r.Context(), req.Email, req.CPF)
	switch {
	case err == nil:
		shared.RespondWithError(w, r, http.StatusBadRequest, msgAlreadyRegistered)
		return
	case !errors.Is(err, store.ErrUserNotFound):
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.CPF, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			// Concurrent registration beat the pre-check.
			shared.RespondWithError(w, r, http.StatusBadRequest, msgAlreadyRegistered)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, UserMessageResponse{
		Message: msgUserCreated,
		User:    userToResponse(user),
	})
}

// UpdateUser handles PUT /users/{id} requests.
// Callers may update only their own record; the ownership check runs
// before anything else, including existence of the target. An email key in
// the body is rejected outright, and that rejection fires before lookup.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := getCallerID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	// An unparseable path ID cannot equal the caller's, so it falls under
	// the ownership rejection rather than a 400.
	id, err := getPathID(r, "id")
	if err != nil || id != callerID {
		shared.RespondWithError(w, r, http.StatusForbidden, msgNotOwner)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", callerID))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequestFormat)
		return
	}

	if req.Email != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgEmailImmutable)
		return
	}

	if req.Password != nil && *req.Password != "" {
		if err := domain.ValidatePassword(*req.Password); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgWeakPassword)
			return
		}
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Password != nil && *req.Password != "" {
		user.Password = *req.Password
	}
	// The updated-by stamp applies even when no other field changed.
	user.UpdatedBy = &callerID

	if err := h.userStore.Update(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	log.Info("user updated", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, UserMessageResponse{
		Message: msgUserUpdated,
		User:    userToResponse(user),
	})
}

// DeleteUser handles DELETE /users/{id} requests.
// On success the record is gone for good and the response carries no body.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid user id in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalServerError, err)
		return
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	w.WriteHeader(http.StatusNoContent)
}
