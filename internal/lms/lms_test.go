package lms_test

import (
	"testing"

	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/event"
	"github.com/edupro/edupro-lms/internal/lms"
	"github.com/edupro/edupro-lms/internal/storage"
)

type env struct {
	store    storage.Store
	bus      *event.Bus
	dir      *lms.Directory
	certs    *lms.CertificateRegistry
	progress *lms.ProgressService
	events   *[]event.Event
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := storage.NewInMemoryStore()
	bus := event.NewBus()
	var published []event.Event
	bus.Subscribe(func(e event.Event) { published = append(published, e) })

	cat := catalog.New([]catalog.Course{
		{
			ID:    "101",
			Title: "Web Development Fundamentals",
			Lessons: []catalog.Lesson{
				{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
			},
			Quiz: []catalog.QuizQuestion{{Prompt: "q1"}, {Prompt: "q2"}, {Prompt: "q3"}, {Prompt: "q4"}},
		},
		{
			ID:      "200",
			Title:   "Lessons Only",
			Lessons: []catalog.Lesson{{ID: "1"}, {ID: "2"}},
		},
		{ID: "300", Title: "Empty Course"},
	})

	dir := lms.NewDirectory(store, bus)
	certs := lms.NewCertificateRegistry(dir, cat, "EduPro")
	progress := lms.NewProgressService(dir, cat, certs, bus, lms.DefaultPassScore)
	return &env{store: store, bus: bus, dir: dir, certs: certs, progress: progress, events: &published}
}

func registerAlice(t *testing.T, e *env) lms.User {
	t.Helper()
	if !e.dir.Register("Alice Doe", "alice@example.com", "pw") {
		t.Fatalf("register failed")
	}
	u, ok := e.dir.FindByEmail("alice@example.com")
	if !ok {
		t.Fatalf("registered user not found")
	}
	return u
}
