package controllers

import (
	"net/http"

	"github.com/davidalonso/gamevault-backend/api/middleware"
	"github.com/davidalonso/gamevault-backend/api/responses"
	"github.com/davidalonso/gamevault-backend/api/validators"
	"github.com/davidalonso/gamevault-backend/internal/auth"
	"github.com/davidalonso/gamevault-backend/internal/users"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
)

type signupPayload struct {
	Success bool           `json:"success"`
	User    *users.UserDTO `json:"user"`
}

type loginPayload struct {
	Success bool           `json:"success"`
	Token   string         `json:"token"`
	User    *users.UserDTO `json:"user"`
}

// AuthSignup wires account creation into the HTTP layer.
func AuthSignup(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, signupPayload{Success: true, User: result.User})
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, loginPayload{Success: true, Token: result.Token, User: result.User})
	}
}

// AuthLogout revokes the server-side session behind the presented token.
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accessID := middleware.AccessIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), accessID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Logged out"})
	}
}
