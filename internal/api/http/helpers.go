package http

import (
	"net/http"

	auth "github.com/edupro/edupro-lms/internal/auth/middleware"
	"github.com/edupro/edupro-lms/internal/lms"
)

// requestUser resolves the token subject to a directory entry. A token
// whose subject no longer exists in the directory is as good as no token.
func requestUser(r *http.Request, dir *lms.Directory) (lms.User, bool) {
	sub := auth.SubjectFromContext(r.Context())
	if sub == "" {
		return lms.User{}, false
	}
	return dir.FindByEmail(sub)
}
