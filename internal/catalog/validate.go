package catalog

import (
	"fmt"
	"strings"
)

// ValidationError collects every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the cross-field rules the JSON schema cannot express:
// unique ids, payloads matching the kind, and answer/line references in range.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c.Sections) == 0 {
		add("catalog has no sections")
	}

	sectionSeen := make(map[SectionID]bool)
	lessonSeen := make(map[string]SectionID)

	for _, s := range c.Sections {
		if s.ID == "" {
			add("section with empty id")
		}
		if sectionSeen[s.ID] {
			add("duplicate section id %q", s.ID)
		}
		sectionSeen[s.ID] = true

		if len(s.Lessons) == 0 {
			add("section %q has no lessons", s.ID)
		}

		for _, l := range s.Lessons {
			if prev, dup := lessonSeen[l.ID]; dup {
				add("duplicate lesson id %q (sections %q and %q)", l.ID, prev, s.ID)
			}
			lessonSeen[l.ID] = s.ID
			problems = append(problems, validateLesson(l)...)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateLesson(l Lesson) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf("lesson %q: ", l.ID)+fmt.Sprintf(format, args...))
	}

	if l.ID == "" {
		problems = append(problems, "lesson with empty id")
	}

	switch l.Kind {
	case KindContent:
		if strings.TrimSpace(l.Content) == "" {
			add("content lesson has no text")
		}
		if l.Question != nil || l.CodeError != nil {
			add("content lesson carries a graded payload")
		}

	case KindQuestion:
		if l.Question == nil {
			add("question lesson has no question payload")
			break
		}
		if len(l.Question.Answers) < 2 {
			add("question needs at least 2 answers, has %d", len(l.Question.Answers))
		}
		if l.Question.CorrectIndex < 0 || l.Question.CorrectIndex >= len(l.Question.Answers) {
			add("correct index %d out of range [0,%d)", l.Question.CorrectIndex, len(l.Question.Answers))
		}

	case KindCodeError:
		if l.CodeError == nil {
			add("code-error lesson has no code_error payload")
			break
		}
		lineCount := len(l.CodeError.Lines())
		seen := make(map[int]bool)
		if len(l.CodeError.ErrorLines) == 0 {
			add("code-error lesson has no error lines")
		}
		for _, line := range l.CodeError.ErrorLines {
			if line < 1 || line > lineCount {
				add("error line %d outside snippet (1-%d)", line, lineCount)
			}
			if seen[line] {
				add("error line %d listed twice", line)
			}
			seen[line] = true
		}

	default:
		add("unknown kind %q", l.Kind)
	}

	return problems
}
