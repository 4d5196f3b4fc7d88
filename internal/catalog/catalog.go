// Package catalog holds the read-only content catalog: languages,
// lessons, vocabulary, dialogues and exercises. Content is seeded in
// code and can be extended with validated JSON content packs.
package catalog

import (
	"fmt"
	"sort"
)

// Catalog indexes languages and lessons by language code.
type Catalog struct {
	languages []Language
	byCode    map[string]*Language
	lessons   map[string][]Lesson
}

// New builds a catalog from the built-in seed content.
func New() *Catalog {
	c := &Catalog{
		byCode:  make(map[string]*Language),
		lessons: make(map[string][]Lesson),
	}
	c.seed()
	return c
}

// Languages returns all catalog languages.
func (c *Catalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// Language returns the language with the given code, or nil.
func (c *Catalog) Language(code string) *Language {
	return c.byCode[code]
}

// Lessons returns the lessons for a language, ordered by lesson number
// ascending. Unknown codes yield an empty slice.
func (c *Catalog) Lessons(code string) []Lesson {
	src := c.lessons[code]
	out := make([]Lesson, len(src))
	copy(out, src)
	return out
}

// Lesson returns the lesson with the given number, or nil.
func (c *Catalog) Lesson(code string, number int) *Lesson {
	for i := range c.lessons[code] {
		if c.lessons[code][i].LessonNumber == number {
			return &c.lessons[code][i]
		}
	}
	return nil
}

// addLanguage registers a language entry.
func (c *Catalog) addLanguage(lang Language) {
	c.languages = append(c.languages, lang)
	c.byCode[lang.Code] = &c.languages[len(c.languages)-1]
	// Re-point entries: append may have reallocated the backing array.
	for i := range c.languages {
		c.byCode[c.languages[i].Code] = &c.languages[i]
	}
}

// addLessons merges lessons into a language, keeping lesson-number order
// and rejecting duplicates.
func (c *Catalog) addLessons(code string, lessons []Lesson) error {
	existing := c.lessons[code]
	seen := make(map[int]bool, len(existing))
	for _, l := range existing {
		seen[l.LessonNumber] = true
	}
	for _, l := range lessons {
		if seen[l.LessonNumber] {
			return fmt.Errorf("duplicate lesson %d for language %q", l.LessonNumber, code)
		}
		seen[l.LessonNumber] = true
		existing = append(existing, l)
	}
	sort.Slice(existing, func(i, j int) bool {
		return existing[i].LessonNumber < existing[j].LessonNumber
	})
	c.lessons[code] = existing
	return nil
}
