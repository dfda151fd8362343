package lms

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/edupro/edupro-lms/internal/catalog"
)

// ErrNoUser marks a contract violation: issuance was requested for a user
// the directory cannot locate. Callers are expected to check authentication
// before issuing; this error is caught by SaveQuizScore, never surfaced
// past it.
var ErrNoUser = errors.New("lms: user not found in directory")

// CertificateRegistry issues certificates and resolves them globally by id.
type CertificateRegistry struct {
	dir    *Directory
	cat    *catalog.Catalog
	issuer string
	now    func() time.Time
}

func NewCertificateRegistry(dir *Directory, cat *catalog.Catalog, issuer string) *CertificateRegistry {
	return &CertificateRegistry{dir: dir, cat: cat, issuer: issuer, now: time.Now}
}

// Issue creates a certificate for a passed course, appends it to the
// course record and updates lastCertificateId. The id format is
// {courseId}-{base36 timestamp}-{5-char suffix}; collisions are treated as
// negligible and not re-checked.
func (r *CertificateRegistry) Issue(u User, courseID catalog.ID, score int) (Certificate, error) {
	stored, ok := r.dir.FindByEmail(u.Email)
	if !ok {
		return Certificate{}, ErrNoUser
	}

	title := ""
	if course, ok := r.cat.CourseByID(courseID); ok {
		title = course.Title
	}
	cert := Certificate{
		ID:          r.newID(courseID),
		IssuedOn:    r.now().UTC(),
		Score:       score,
		CourseID:    courseID,
		CourseTitle: title,
		Issuer:      r.issuer,
	}

	rec, ok := stored.Progress[courseID]
	if !ok {
		rec = defaultProgressRecord()
	}
	rec.Certificates = append(rec.Certificates, cert)
	rec.LastCertificateID = cert.ID
	rec.Enrolled = true
	if !r.dir.UpdateProgress(u.Email, courseID, rec) {
		return Certificate{}, ErrNoUser
	}
	return cert, nil
}

// ListForUser flattens certificates across all of the user's courses:
// course-iteration order, then per-course append order. Not globally
// sorted by issuance time.
func (r *CertificateRegistry) ListForUser(u User) []Certificate {
	stored, ok := r.dir.FindByEmail(u.Email)
	if !ok {
		return []Certificate{}
	}
	out := []Certificate{}
	for _, courseID := range sortedCourseIDs(stored.Progress) {
		out = append(out, stored.Progress[courseID].Certificates...)
	}
	return out
}

// FindByID scans all users and all their course records.
func (r *CertificateRegistry) FindByID(certID string) (Certificate, User, bool) {
	if certID == "" {
		return Certificate{}, User{}, false
	}
	for _, u := range r.dir.Users() {
		for _, rec := range u.Progress {
			for _, cert := range rec.Certificates {
				if cert.ID == certID {
					return cert, u, true
				}
			}
		}
	}
	return Certificate{}, User{}, false
}

// Verification is the caller-friendly result shape for verify pages.
type Verification struct {
	Valid        bool         `json:"valid"`
	Certificate  *Certificate `json:"certificate,omitempty"`
	StudentName  string       `json:"studentName,omitempty"`
	StudentEmail string       `json:"studentEmail,omitempty"`
}

// Verify never mutates state.
func (r *CertificateRegistry) Verify(certID string) Verification {
	cert, owner, ok := r.FindByID(certID)
	if !ok {
		return Verification{Valid: false}
	}
	return Verification{
		Valid:        true,
		Certificate:  &cert,
		StudentName:  owner.Name,
		StudentEmail: owner.Email,
	}
}

func (r *CertificateRegistry) newID(courseID catalog.ID) string {
	ts := strconv.FormatInt(r.now().UnixMilli(), 36)
	return fmt.Sprintf("%s-%s-%s", courseID, ts, randSuffix(5))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

func sortedCourseIDs(progress map[catalog.ID]ProgressRecord) []catalog.ID {
	ids := make([]catalog.ID, 0, len(progress))
	for id := range progress {
		ids = append(ids, id)
	}
	// map iteration order is random; pin course-iteration order numerically
	sort.Slice(ids, func(i, j int) bool { return lessLessonID(ids[i], ids[j]) })
	return ids
}
