package api

import (
	"net/http"
	"time"

	"ayushyaa-be/internal/auth"
	"ayushyaa-be/internal/user"
	"ayushyaa-be/internal/utils"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := s.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.issueToken(w, r, u, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := s.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.issueToken(w, r, u, http.StatusOK)
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := s.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.issueToken(w, r, u, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Me reports the client's restored session; anonymous clients get a null user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := s.Restore(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]*user.User{"user": u})
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, u user.User, code int) {
	token, err := user.GenerateJWT(u)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, code, authResponse{User: u, Token: token})
}
