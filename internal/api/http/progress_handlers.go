package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/lms"

	"github.com/go-chi/chi/v5"
)

// POST /courses/{courseID}/enroll
func EnrollHandler(dir *lms.Directory, svc *lms.ProgressService, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		courseID := catalog.Normalize(chi.URLParam(r, "courseID"))
		if _, ok := cat.CourseByID(courseID); !ok {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		if !svc.Enroll(u, courseID) {
			http.Error(w, "enroll failed", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(svc.Progress(u, courseID))
	}
}

// GET /courses/{courseID}/progress
func GetProgressHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		courseID := catalog.Normalize(chi.URLParam(r, "courseID"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"record":  svc.Progress(u, courseID),
			"percent": svc.CourseProgress(u, courseID),
		})
	}
}

// GET /progress/enrolled
func EnrolledCoursesHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(svc.EnrolledCourseIDs(u))
	}
}

// POST /courses/{courseID}/lessons/{lessonID}/visit
func VisitLessonHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		courseID := catalog.Normalize(chi.URLParam(r, "courseID"))
		lessonID := catalog.Normalize(chi.URLParam(r, "lessonID"))
		if !svc.SaveLastVisited(u, courseID, lessonID) {
			http.Error(w, "save failed", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(svc.Progress(u, courseID))
	}
}

// POST /courses/{courseID}/lessons/{lessonID}/complete
func CompleteLessonHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		courseID := catalog.Normalize(chi.URLParam(r, "courseID"))
		lessonID := catalog.Normalize(chi.URLParam(r, "lessonID"))
		if !svc.CompleteLesson(u, courseID, lessonID) {
			http.Error(w, "lesson unknown, already completed, or out of sequence", http.StatusConflict)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"record":  svc.Progress(u, courseID),
			"percent": svc.CourseProgress(u, courseID),
		})
	}
}

// POST /courses/{courseID}/quiz  { "score": 4 }
func SaveQuizScoreHandler(dir *lms.Directory, svc *lms.ProgressService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(r, dir)
		if !ok {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		var req struct {
			Score *int `json:"score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
			http.Error(w, "score required", http.StatusBadRequest)
			return
		}
		courseID := catalog.Normalize(chi.URLParam(r, "courseID"))
		if !svc.SaveQuizScore(u, courseID, *req.Score) {
			http.Error(w, "save failed", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"record":  svc.Progress(u, courseID),
			"percent": svc.CourseProgress(u, courseID),
		})
	}
}
