package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupro/edupro-lms/internal/lms"
)

// GET /certificates
func ListCertificatesHandler(dir *lms.Directory, reg *lms.CertificateRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(reg.ListForUser(u))
	}
}

// GET /certificates/verify?id=...  (public, never mutates)
func VerifyCertificateHandler(reg *lms.CertificateRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id required", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(reg.Verify(id))
	}
}
