package lms

import (
	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/event"
	"github.com/edupro/edupro-lms/internal/storage"
)

// Storage keys, kept identical to the layout the original store used.
const (
	usersKey   = "lmsUsers"
	sessionKey = "lmsCurrentUser"
)

// Directory owns the users collection and the single session pointer.
// Every successful mutation rewrites the full collection; there are no
// partial writes.
type Directory struct {
	store storage.Store
	bus   *event.Bus
}

func NewDirectory(store storage.Store, bus *event.Bus) *Directory {
	return &Directory{store: store, bus: bus}
}

// Users loads the whole collection. A missing or corrupt stored value
// yields an empty list, never an error.
func (d *Directory) Users() []User {
	var users []User
	storage.LoadJSON(d.store, usersKey, &users)
	if users == nil {
		users = []User{}
	}
	return users
}

func (d *Directory) saveUsers(users []User) bool {
	if !storage.SaveJSON(d.store, usersKey, users) {
		return false
	}
	d.bus.Publish(event.Event{Type: event.UsersChanged, Count: len(users)})
	return true
}

// Register creates a user with empty progress and establishes a session
// for it. Duplicate emails (case-sensitive exact match) are rejected.
func (d *Directory) Register(name, email, password string) bool {
	users := d.Users()
	for _, u := range users {
		if u.Email == email {
			return false
		}
	}
	users = append(users, User{
		Name:     name,
		Email:    email,
		Password: password,
		Progress: map[catalog.ID]ProgressRecord{},
	})
	if !d.saveUsers(users) {
		return false
	}
	d.setSession(email, "register")
	return true
}

// Login compares email and password against the stored values. The
// password is an opaque equality-compared string; hardening is out of
// scope here.
func (d *Directory) Login(email, password string) bool {
	for _, u := range d.Users() {
		if u.Email == email && u.Password == password {
			return d.setSession(email, "login")
		}
	}
	return false
}

// Logout clears the session pointer unconditionally.
func (d *Directory) Logout() {
	if err := d.store.Save(sessionKey, []byte(`""`)); err == nil {
		d.bus.Publish(event.Event{Type: event.UserChanged, Action: "logout"})
	}
}

// CurrentUser resolves the session pointer to a directory entry. A stale
// pointer (email no longer present) reports no user.
func (d *Directory) CurrentUser() (User, bool) {
	var email string
	if !storage.LoadJSON(d.store, sessionKey, &email) || email == "" {
		return User{}, false
	}
	return d.FindByEmail(email)
}

func (d *Directory) FindByEmail(email string) (User, bool) {
	for _, u := range d.Users() {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// UpdateProgress replaces one course record for the user located by email
// at write time. False when the user has vanished from the directory.
func (d *Directory) UpdateProgress(email string, courseID catalog.ID, rec ProgressRecord) bool {
	users := d.Users()
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if users[i].Progress == nil {
			users[i].Progress = map[catalog.ID]ProgressRecord{}
		}
		users[i].Progress[courseID] = rec.Normalized()
		return d.saveUsers(users)
	}
	return false
}

func (d *Directory) setSession(email, action string) bool {
	if !storage.SaveJSON(d.store, sessionKey, email) {
		return false
	}
	d.bus.Publish(event.Event{Type: event.UserChanged, Action: action, Email: email})
	return true
}
