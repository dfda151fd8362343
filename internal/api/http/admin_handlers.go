package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupro/edupro-lms/internal/lms"
)

// GET /users (admin only). Emails and enrollment counts, never passwords.
func ListUsersHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	type row struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Enrolled     int    `json:"enrolled"`
		Certificates int    `json:"certificates"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		out := []row{}
		for _, u := range dir.Users() {
			certs := 0
			for _, rec := range u.Progress {
				certs += len(rec.Certificates)
			}
			out = append(out, row{
				Name:         u.Name,
				Email:        u.Email,
				Enrolled:     len(svc.EnrolledCourseIDs(u)),
				Certificates: certs,
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
