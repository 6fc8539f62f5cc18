package catalog

import "strings"

// SectionID identifies an ordered group of lessons on the map.
type SectionID string

const (
	SectionVariables SectionID = "variables"
	SectionFunctions SectionID = "functions"
)

// Kind is the lesson kind, which selects the grading rule.
type Kind string

const (
	KindContent   Kind = "content"
	KindQuestion  Kind = "question"
	KindCodeError Kind = "code-error"
)

// AllKinds returns all lesson kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindContent, KindQuestion, KindCodeError}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindContent:
		return "Reading"
	case KindQuestion:
		return "Quiz"
	case KindCodeError:
		return "Spot the Error"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindContent:
		return "📖"
	case KindQuestion:
		return "❓"
	case KindCodeError:
		return "🔍"
	default:
		return "?"
	}
}

// Graded reports whether answers of this kind count as attempts.
func (k Kind) Graded() bool {
	return k == KindQuestion || k == KindCodeError
}

// Question is the payload of a multiple-choice lesson.
type Question struct {
	Prompt       string   `json:"prompt"`
	Answers      []string `json:"answers"`
	CorrectIndex int      `json:"correct_index"`
}

// CodeError is the payload of a spot-the-error lesson. ErrorLines are
// 1-based line numbers into Snippet.
type CodeError struct {
	Prompt      string `json:"prompt"`
	Snippet     string `json:"snippet"`
	ErrorLines  []int  `json:"error_lines"`
	Explanation string `json:"explanation"`
}

// Lines splits the snippet into display lines.
func (c CodeError) Lines() []string {
	return strings.Split(c.Snippet, "\n")
}

// IsErrorLine reports whether the 1-based line is one of the designated errors.
func (c CodeError) IsErrorLine(line int) bool {
	for _, l := range c.ErrorLines {
		if l == line {
			return true
		}
	}
	return false
}

// Lesson is one island on the path.
type Lesson struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      Kind       `json:"kind"`
	Content   string     `json:"content"`
	Question  *Question  `json:"question,omitempty"`
	CodeError *CodeError `json:"code_error,omitempty"`

	// Section is filled in when the catalog is indexed.
	Section SectionID `json:"-"`
}

// Section is an ordered list of lessons. Completing the last lesson of a
// section opens the first lesson of the next one.
type Section struct {
	ID          SectionID `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	Lessons     []Lesson  `json:"lessons"`
}

// LessonIDs returns the ids of the section's lessons in declaration order.
func (s Section) LessonIDs() []string {
	ids := make([]string, len(s.Lessons))
	for i, l := range s.Lessons {
		ids[i] = l.ID
	}
	return ids
}
