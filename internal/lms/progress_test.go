package lms_test

import (
	"testing"

	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/event"
	"github.com/edupro/edupro-lms/internal/lms"
)

func TestCompleteLesson_Sequential(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	for i, lessonID := range []catalog.ID{"1", "2", "3", "4", "5"} {
		if !e.progress.CompleteLesson(u, "101", lessonID) {
			t.Fatalf("lesson %s should complete in order", lessonID)
		}
		rec := e.progress.Progress(u, "101")
		if len(rec.CompletedLessons) != i+1 {
			t.Fatalf("after lesson %s: %d completed", lessonID, len(rec.CompletedLessons))
		}
		if rec.LastVisited == nil || *rec.LastVisited != lessonID {
			t.Fatalf("lastVisited = %v, want %s", rec.LastVisited, lessonID)
		}
		if !rec.Enrolled {
			t.Fatalf("completion must set enrolled")
		}
	}
}

func TestCompleteLesson_SkippingAheadRejected(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	if e.progress.CompleteLesson(u, "101", "3") {
		t.Fatalf("lesson at index 2 must not complete with 0 done")
	}
	if !e.progress.CompleteLesson(u, "101", "1") {
		t.Fatal("lesson 1")
	}
	if e.progress.CompleteLesson(u, "101", "3") {
		t.Fatalf("lesson at index 2 must not complete with 1 done")
	}
	rec := e.progress.Progress(u, "101")
	if len(rec.CompletedLessons) != 1 || rec.CompletedLessons[0] != "1" {
		t.Fatalf("state changed by rejected attempts: %v", rec.CompletedLessons)
	}
}

func TestCompleteLesson_RepeatIsRejected(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	if !e.progress.CompleteLesson(u, "101", "1") {
		t.Fatal("first completion")
	}
	if e.progress.CompleteLesson(u, "101", "1") {
		t.Fatalf("second completion of same lesson should return false")
	}
	rec := e.progress.Progress(u, "101")
	if len(rec.CompletedLessons) != 1 {
		t.Fatalf("set changed: %v", rec.CompletedLessons)
	}
}

func TestCompleteLesson_UnknownCourseOrLesson(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	if e.progress.CompleteLesson(u, "999", "1") {
		t.Fatalf("unknown course")
	}
	if e.progress.CompleteLesson(u, "101", "42") {
		t.Fatalf("lesson not in course")
	}
}

func TestCourseProgress(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	// course with neither lessons nor quiz
	if p := e.progress.CourseProgress(u, "300"); p != 0 {
		t.Fatalf("empty course progress = %d, want 0", p)
	}
	// unknown course
	if p := e.progress.CourseProgress(u, "999"); p != 0 {
		t.Fatalf("unknown course progress = %d, want 0", p)
	}

	// 101: 5 lessons + quiz = 6 units
	if p := e.progress.CourseProgress(u, "101"); p != 0 {
		t.Fatalf("fresh progress = %d", p)
	}
	for _, id := range []catalog.ID{"1", "2", "3"} {
		e.progress.CompleteLesson(u, "101", id)
	}
	if p := e.progress.CourseProgress(u, "101"); p != 50 {
		t.Fatalf("3/6 units = %d, want 50", p)
	}
	for _, id := range []catalog.ID{"4", "5"} {
		e.progress.CompleteLesson(u, "101", id)
	}
	if p := e.progress.CourseProgress(u, "101"); p != 83 {
		t.Fatalf("5/6 units = %d, want 83 (floored)", p)
	}
	e.progress.SaveQuizScore(u, "101", 4)
	if p := e.progress.CourseProgress(u, "101"); p != 100 {
		t.Fatalf("all units = %d, want 100", p)
	}

	// lessons-only course reaches 100 without a quiz
	e.progress.CompleteLesson(u, "200", "1")
	e.progress.CompleteLesson(u, "200", "2")
	if p := e.progress.CourseProgress(u, "200"); p != 100 {
		t.Fatalf("lessons-only complete = %d, want 100", p)
	}
}

func TestEnroll_Idempotent(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	if !e.progress.Enroll(u, "101") {
		t.Fatal("enroll")
	}
	e.progress.CompleteLesson(u, "101", "1")
	if !e.progress.Enroll(u, "101") {
		t.Fatal("re-enroll")
	}
	rec := e.progress.Progress(u, "101")
	if !rec.Enrolled || len(rec.CompletedLessons) != 1 {
		t.Fatalf("re-enroll disturbed record: %+v", rec)
	}
}

func TestEnrolledCourseIDs_InclusiveDefinition(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	e.progress.Enroll(u, "101")
	// legacy-shaped record: completed lesson but no enrolled flag
	e.progress.SaveProgress(u, "200", lms.ProgressRecord{CompletedLessons: []catalog.ID{"1"}})
	// score only
	sc := 1
	e.progress.SaveProgress(u, "300", lms.ProgressRecord{QuizScore: &sc})

	ids := e.progress.EnrolledCourseIDs(u)
	if len(ids) != 3 {
		t.Fatalf("enrolled ids = %v, want 3 courses", ids)
	}
}

func TestSaveProgress_UserGoneFails(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)
	if err := e.store.Save("lmsUsers", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if e.progress.SaveProgress(u, "101", lms.ProgressRecord{Enrolled: true}) {
		t.Fatalf("save for vanished user should fail")
	}
}

func TestProgress_ReadDoesNotPersistDefault(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	rec := e.progress.Progress(u, "101")
	if rec.Enrolled || len(rec.CompletedLessons) != 0 || rec.QuizScore != nil {
		t.Fatalf("default record not empty: %+v", rec)
	}
	stored, _ := e.dir.FindByEmail(u.Email)
	if _, ok := stored.Progress["101"]; ok {
		t.Fatalf("read must not persist the default record")
	}
}

func TestSaveProgress_RoundTripNormalizes(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	sc := 2
	lv := catalog.ID("3")
	in := lms.ProgressRecord{
		CompletedLessons: []catalog.ID{"3", "1", "3", "2", "10"},
		QuizScore:        &sc,
		LastVisited:      &lv,
	}
	if !e.progress.SaveProgress(u, "101", in) {
		t.Fatal("save")
	}
	out := e.progress.Progress(u, "101")
	want := []catalog.ID{"1", "2", "3", "10"}
	if len(out.CompletedLessons) != len(want) {
		t.Fatalf("lessons = %v, want %v", out.CompletedLessons, want)
	}
	for i := range want {
		if out.CompletedLessons[i] != want[i] {
			t.Fatalf("lessons = %v, want %v (numeric sort, deduped)", out.CompletedLessons, want)
		}
	}
	if !out.Enrolled {
		t.Fatalf("enrolled must derive true from completion data")
	}
	if out.QuizScore == nil || *out.QuizScore != 2 {
		t.Fatalf("quizScore = %v", out.QuizScore)
	}
	if out.LastVisited == nil || *out.LastVisited != "3" {
		t.Fatalf("lastVisited = %v", out.LastVisited)
	}
}

func TestSaveLastVisited(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)

	if _, ok := e.progress.LastVisited(u, "101"); ok {
		t.Fatalf("fresh record has no lastVisited")
	}
	if !e.progress.SaveLastVisited(u, "101", "2") {
		t.Fatal("save")
	}
	if lv, ok := e.progress.LastVisited(u, "101"); !ok || lv != "2" {
		t.Fatalf("lastVisited = %v,%v", lv, ok)
	}
}

func TestProgressUpdated_Published(t *testing.T) {
	e := newEnv(t)
	u := registerAlice(t, e)
	e.progress.CompleteLesson(u, "101", "1")

	found := false
	for _, ev := range *e.events {
		if ev.Type == event.ProgressUpdated && ev.CourseID == "101" && ev.Progress == 16 {
			found = true // 1 of 6 units, floored
		}
	}
	if !found {
		t.Fatalf("progressUpdated not published: %+v", *e.events)
	}
}
