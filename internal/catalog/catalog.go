package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ID is the canonical course/lesson identifier. Content files historically
// carry numeric ids, so it decodes from either a JSON number or string and
// always normalizes to the string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("catalog: invalid id %s", string(b))
}

// Normalize converts any external id representation to its canonical form.
func Normalize(v any) ID {
	switch t := v.(type) {
	case ID:
		return t
	case string:
		return ID(t)
	case int:
		return ID(strconv.Itoa(t))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case float64:
		return ID(strconv.FormatInt(int64(t), 10))
	default:
		return ID(fmt.Sprint(v))
	}
}

type Lesson struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

type QuizQuestion struct {
	Prompt    string   `json:"prompt"`
	Choices   []string `json:"choices,omitempty"`
	AnswerKey int      `json:"answer_key,omitempty"`
}

type Course struct {
	ID      ID             `json:"id"`
	Title   string         `json:"title"`
	Lessons []Lesson       `json:"lessons"`
	Quiz    []QuizQuestion `json:"quiz,omitempty"`
}

// LessonIndex returns the ordinal position of a lesson within the course
// sequence, or false when the lesson is unknown to the course.
func (c Course) LessonIndex(lessonID ID) (int, bool) {
	for i, l := range c.Lessons {
		if l.ID == lessonID {
			return i, true
		}
	}
	return 0, false
}

func (c Course) HasQuiz() bool { return len(c.Quiz) > 0 }

// Catalog is the read-only course content collaborator. It is populated
// once at startup and never mutated by the core.
type Catalog struct {
	courses []Course
	byID    map[ID]Course
}

func New(courses []Course) *Catalog {
	c := &Catalog{courses: courses, byID: make(map[ID]Course, len(courses))}
	for _, course := range courses {
		c.byID[course.ID] = course
	}
	return c
}

// LoadFile reads a catalog JSON file; an empty path yields the embedded seed.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return New(seedCourses), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var courses []Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(courses), nil
}

func (c *Catalog) CourseByID(id ID) (Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

func (c *Catalog) List() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}
