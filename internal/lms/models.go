package lms

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/edupro/edupro-lms/internal/catalog"
)

// User is the unit of persistence: the whole users collection is rewritten
// on every mutation. Passwords are stored as plain strings; this is a
// local demo store, not an account system.
type User struct {
	Name     string                        `json:"name"`
	Email    string                        `json:"email"`
	Password string                        `json:"password"`
	Progress map[catalog.ID]ProgressRecord `json:"progress"`
}

// Public strips fields that must never leave the process boundary.
func (u User) Public() map[string]string {
	return map[string]string{"name": u.Name, "email": u.Email}
}

// ProgressRecord is the per-user, per-course state. JSON field names match
// the persisted layout, so stores written by earlier revisions load as-is.
type ProgressRecord struct {
	Enrolled          bool          `json:"enrolled"`
	CompletedLessons  []catalog.ID  `json:"completedLessons"`
	QuizScore         *int          `json:"quizScore"`
	LastVisited       *catalog.ID   `json:"lastVisited"`
	Certificates      []Certificate `json:"certificates"`
	LastCertificateID string        `json:"lastCertificateId,omitempty"`
}

func defaultProgressRecord() ProgressRecord {
	return ProgressRecord{
		CompletedLessons: []catalog.ID{},
		Certificates:     []Certificate{},
	}
}

// UnmarshalJSON tolerates records written by older revisions: a non-array
// completedLessons or certificates field collapses to empty, a malformed
// quizScore to unset. Decoding never fails on field shape alone.
func (r *ProgressRecord) UnmarshalJSON(b []byte) error {
	var v struct {
		Enrolled          bool            `json:"enrolled"`
		CompletedLessons  json.RawMessage `json:"completedLessons"`
		QuizScore         json.RawMessage `json:"quizScore"`
		LastVisited       *catalog.ID     `json:"lastVisited"`
		Certificates      json.RawMessage `json:"certificates"`
		LastCertificateID string          `json:"lastCertificateId"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	out := defaultProgressRecord()
	out.Enrolled = v.Enrolled
	out.LastVisited = v.LastVisited
	out.LastCertificateID = v.LastCertificateID

	var lessons []catalog.ID
	if len(v.CompletedLessons) > 0 && json.Unmarshal(v.CompletedLessons, &lessons) == nil && lessons != nil {
		out.CompletedLessons = lessons
	}
	var score *int
	if len(v.QuizScore) > 0 && json.Unmarshal(v.QuizScore, &score) == nil {
		out.QuizScore = score
	}
	var certs []Certificate
	if len(v.Certificates) > 0 && json.Unmarshal(v.Certificates, &certs) == nil && certs != nil {
		out.Certificates = certs
	}
	*r = out.Normalized()
	return nil
}

// Normalized enforces the record invariants: completedLessons deduplicated
// and numerically ascending, non-nil slices, and the enrolled flag derived
// true whenever completion or score data exists (records predating the
// flag stay readable).
func (r ProgressRecord) Normalized() ProgressRecord {
	if r.CompletedLessons == nil {
		r.CompletedLessons = []catalog.ID{}
	}
	seen := make(map[catalog.ID]struct{}, len(r.CompletedLessons))
	lessons := make([]catalog.ID, 0, len(r.CompletedLessons))
	for _, id := range r.CompletedLessons {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		lessons = append(lessons, id)
	}
	sort.Slice(lessons, func(i, j int) bool { return lessLessonID(lessons[i], lessons[j]) })
	r.CompletedLessons = lessons

	if r.Certificates == nil {
		r.Certificates = []Certificate{}
	}
	if len(r.CompletedLessons) > 0 || r.QuizScore != nil {
		r.Enrolled = true
	}
	return r
}

func (r ProgressRecord) hasCompleted(lessonID catalog.ID) bool {
	for _, id := range r.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Lesson ids are numeric in content data; compare them as numbers when
// both sides parse, lexically otherwise.
func lessLessonID(a, b catalog.ID) bool {
	ai, aerr := strconv.Atoi(string(a))
	bi, berr := strconv.Atoi(string(b))
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

// Certificate is an immutable proof-of-completion record. IssuedOn
// round-trips as RFC 3339.
type Certificate struct {
	ID          string     `json:"id"`
	IssuedOn    time.Time  `json:"issuedOn"`
	Score       int        `json:"score"`
	CourseID    catalog.ID `json:"courseId"`
	CourseTitle string     `json:"courseTitle"`
	Issuer      string     `json:"issuer"`
}
