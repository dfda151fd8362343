package http

import (
	"encoding/json"
	"net/http"

	auth "github.com/edupro/edupro-lms/internal/auth/middleware"
	"github.com/edupro/edupro-lms/internal/lms"

	"golang.org/x/crypto/bcrypt"
)

// POST /auth/register  { "name": "...", "email": "...", "password": "..." }
func RegisterHandler(a *auth.AuthService, dir *lms.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "name, email and password required", http.StatusBadRequest)
			return
		}
		if !dir.Register(req.Name, req.Email, req.Password) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		tok, err := a.IssueJWT(req.Email, "student")
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		u, _ := dir.FindByEmail(req.Email)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": tok, "user": u.Public()})
	}
}

// POST /auth/login  { "email": "...", "password": "..." }
// The configured admin account logs in with a bcrypt-checked password and
// gets an admin-role token; everyone else is a student with the stored
// plaintext credential compared exactly.
func LoginHandler(a *auth.AuthService, dir *lms.Directory, adminUser, adminPassHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		if adminUser != "" && req.Email == adminUser {
			if bcrypt.CompareHashAndPassword([]byte(adminPassHash), []byte(req.Password)) != nil {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			tok, err := a.IssueJWT(adminUser, "admin")
			if err != nil {
				http.Error(w, "issue token", 500)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
			return
		}

		if !dir.Login(req.Email, req.Password) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(req.Email, "student")
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		u, _ := dir.FindByEmail(req.Email)
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": tok, "user": u.Public()})
	}
}

// POST /auth/logout
func LogoutHandler(dir *lms.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir.Logout()
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /auth/me
func MeHandler(dir *lms.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(u.Public())
	}
}
