package lms

import (
	"log"

	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/event"
)

// DefaultPassScore is the minimum quiz score that earns a certificate.
const DefaultPassScore = 3

// ProgressService edits the progress sub-map of users located through the
// directory and enforces the lesson sequencing policy.
type ProgressService struct {
	dir       *Directory
	cat       *catalog.Catalog
	certs     *CertificateRegistry
	bus       *event.Bus
	passScore int
}

func NewProgressService(dir *Directory, cat *catalog.Catalog, certs *CertificateRegistry, bus *event.Bus, passScore int) *ProgressService {
	if passScore <= 0 {
		passScore = DefaultPassScore
	}
	return &ProgressService{dir: dir, cat: cat, certs: certs, bus: bus, passScore: passScore}
}

// Progress returns the user's record for a course, or a normalized default
// when none exists. Reading never persists the default.
func (s *ProgressService) Progress(u User, courseID catalog.ID) ProgressRecord {
	stored, ok := s.dir.FindByEmail(u.Email)
	if !ok {
		return defaultProgressRecord()
	}
	rec, ok := stored.Progress[courseID]
	if !ok {
		return defaultProgressRecord()
	}
	return rec.Normalized()
}

// SaveProgress re-validates the record shape and writes it. False only
// when the user cannot be located in the directory at write time.
func (s *ProgressService) SaveProgress(u User, courseID catalog.ID, rec ProgressRecord) bool {
	return s.dir.UpdateProgress(u.Email, courseID, rec)
}

// Enroll is idempotent: it raises the enrolled flag without disturbing
// existing completion or score data.
func (s *ProgressService) Enroll(u User, courseID catalog.ID) bool {
	rec := s.Progress(u, courseID)
	rec.Enrolled = true
	if !s.SaveProgress(u, courseID, rec) {
		return false
	}
	s.publishProgress(u, courseID)
	return true
}

// CompleteLesson marks a lesson done. Completion is strictly sequential:
// the lesson's ordinal position in the course sequence may not exceed the
// number of lessons already completed. Out-of-order attempts and repeats
// are rejected, not reordered.
func (s *ProgressService) CompleteLesson(u User, courseID, lessonID catalog.ID) bool {
	course, ok := s.cat.CourseByID(courseID)
	if !ok {
		return false
	}
	idx, ok := course.LessonIndex(lessonID)
	if !ok {
		return false
	}

	rec := s.Progress(u, courseID)
	if rec.hasCompleted(lessonID) {
		return false
	}
	if idx > len(rec.CompletedLessons) {
		return false
	}

	rec.CompletedLessons = append(rec.CompletedLessons, lessonID)
	rec.Enrolled = true
	lv := lessonID
	rec.LastVisited = &lv
	if !s.SaveProgress(u, courseID, rec) {
		return false
	}
	s.publishProgress(u, courseID)
	return true
}

// SaveQuizScore stores the score unchecked (scores above the course
// maximum are accepted verbatim) and, on a pass, issues a certificate
// unless a still-valid one already exists for the course. Issuance
// failures are logged; the score save still reports success.
func (s *ProgressService) SaveQuizScore(u User, courseID catalog.ID, score int) bool {
	rec := s.Progress(u, courseID)
	sc := score
	rec.QuizScore = &sc
	if !s.SaveProgress(u, courseID, rec) {
		return false
	}

	if score >= s.passScore && !s.certificateStillValid(rec.LastCertificateID) {
		if _, err := s.certs.Issue(u, courseID, score); err != nil {
			log.Printf("lms: certificate issuance for course %s failed: %v", courseID, err)
		}
	}
	s.publishProgress(u, courseID)
	return true
}

// CourseProgress reports percent complete in [0,100]. The quiz, when the
// course has one, counts as a single extra unit completed once any score
// is recorded.
func (s *ProgressService) CourseProgress(u User, courseID catalog.ID) int {
	course, ok := s.cat.CourseByID(courseID)
	if !ok {
		return 0
	}
	totalUnits := len(course.Lessons)
	if course.HasQuiz() {
		totalUnits++
	}
	if totalUnits == 0 {
		return 0
	}

	rec := s.Progress(u, courseID)
	completedUnits := len(rec.CompletedLessons)
	if course.HasQuiz() && rec.QuizScore != nil {
		completedUnits++
	}
	pct := completedUnits * 100 / totalUnits
	if pct > 100 {
		pct = 100
	}
	return pct
}

// EnrolledCourseIDs counts a course as enrolled when the flag is set, any
// lesson is completed, or a quiz score exists. The inclusive definition
// tolerates legacy records lacking the explicit flag.
func (s *ProgressService) EnrolledCourseIDs(u User) []catalog.ID {
	stored, ok := s.dir.FindByEmail(u.Email)
	if !ok {
		return []catalog.ID{}
	}
	out := []catalog.ID{}
	for _, courseID := range sortedCourseIDs(stored.Progress) {
		rec := stored.Progress[courseID]
		if rec.Enrolled || len(rec.CompletedLessons) > 0 || rec.QuizScore != nil {
			out = append(out, courseID)
		}
	}
	return out
}

// SaveLastVisited remembers the lesson to resume from; it enrolls fresh
// records as a side effect, matching how enrollment and first visits are
// always paired.
func (s *ProgressService) SaveLastVisited(u User, courseID, lessonID catalog.ID) bool {
	rec := s.Progress(u, courseID)
	rec.Enrolled = true
	lv := lessonID
	rec.LastVisited = &lv
	return s.SaveProgress(u, courseID, rec)
}

func (s *ProgressService) LastVisited(u User, courseID catalog.ID) (catalog.ID, bool) {
	rec := s.Progress(u, courseID)
	if rec.LastVisited == nil {
		return "", false
	}
	return *rec.LastVisited, true
}

func (s *ProgressService) certificateStillValid(certID string) bool {
	if certID == "" {
		return false
	}
	_, _, ok := s.certs.FindByID(certID)
	return ok
}

func (s *ProgressService) publishProgress(u User, courseID catalog.ID) {
	s.bus.Publish(event.Event{
		Type:     event.ProgressUpdated,
		Email:    u.Email,
		CourseID: string(courseID),
		Progress: s.CourseProgress(u, courseID),
	})
}
