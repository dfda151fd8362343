package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupro/edupro-lms/internal/catalog"

	"github.com/go-chi/chi/v5"
)

// Quiz answer keys never leave the server; the public view carries prompts
// and choices only.
type publicQuestion struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices,omitempty"`
}

type publicCourse struct {
	ID      catalog.ID       `json:"id"`
	Title   string           `json:"title"`
	Lessons []catalog.Lesson `json:"lessons"`
	Quiz    []publicQuestion `json:"quiz,omitempty"`
}

func publicView(c catalog.Course) publicCourse {
	out := publicCourse{ID: c.ID, Title: c.Title, Lessons: c.Lessons}
	for _, q := range c.Quiz {
		out.Quiz = append(out.Quiz, publicQuestion{Prompt: q.Prompt, Choices: q.Choices})
	}
	return out
}

// GET /courses
func ListCoursesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := []publicCourse{}
		for _, c := range cat.List() {
			out = append(out, publicView(c))
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /courses/{courseID}
func GetCourseHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.Normalize(chi.URLParam(r, "courseID"))
		c, ok := cat.CourseByID(id)
		if !ok {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(publicView(c))
	}
}
