package catalog

import "testing"

func TestLanguages(t *testing.T) {
	c := New()
	langs := c.Languages()
	if len(langs) != 10 {
		t.Fatalf("len(Languages()) = %d, want 10", len(langs))
	}
	if langs[0].Code != "es" || langs[0].Name != "Spanish" {
		t.Errorf("first language = %s (%s), want es (Spanish)", langs[0].Code, langs[0].Name)
	}
}

func TestLanguageLookup(t *testing.T) {
	c := New()

	lang := c.Language("ja")
	if lang == nil {
		t.Fatal("Language(ja) = nil")
	}
	if lang.TotalLessons != 75 {
		t.Errorf("ja TotalLessons = %d, want 75", lang.TotalLessons)
	}
	if lang.Difficulty != DifficultyAdvanced {
		t.Errorf("ja Difficulty = %s, want advanced", lang.Difficulty)
	}

	if c.Language("xx") != nil {
		t.Error("Language(xx) should be nil")
	}
}

func TestLessonsOrdered(t *testing.T) {
	c := New()
	lessons := c.Lessons("es")
	if len(lessons) != seededLessonCount {
		t.Fatalf("len(Lessons(es)) = %d, want %d", len(lessons), seededLessonCount)
	}
	for i, l := range lessons {
		if l.LessonNumber != i+1 {
			t.Errorf("lesson[%d].LessonNumber = %d, want %d", i, l.LessonNumber, i+1)
		}
		if l.LanguageCode != "es" {
			t.Errorf("lesson[%d].LanguageCode = %s, want es", i, l.LanguageCode)
		}
	}
}

func TestLessonLookup(t *testing.T) {
	c := New()

	l := c.Lesson("fr", 3)
	if l == nil {
		t.Fatal("Lesson(fr, 3) = nil")
	}
	if l.LessonNumber != 3 {
		t.Errorf("LessonNumber = %d, want 3", l.LessonNumber)
	}

	if c.Lesson("fr", 99) != nil {
		t.Error("Lesson(fr, 99) should be nil")
	}
	if c.Lesson("xx", 1) != nil {
		t.Error("Lesson(xx, 1) should be nil")
	}
}

func TestLessonDifficultyRamp(t *testing.T) {
	tests := []struct {
		number int
		want   Difficulty
	}{
		{1, DifficultyBeginner},
		{3, DifficultyBeginner},
		{4, DifficultyIntermediate},
		{7, DifficultyIntermediate},
		{8, DifficultyAdvanced},
		{10, DifficultyAdvanced},
	}
	for _, tt := range tests {
		if got := lessonDifficulty(tt.number); got != tt.want {
			t.Errorf("lessonDifficulty(%d) = %s, want %s", tt.number, got, tt.want)
		}
	}
}

// Every seeded exercise must list its correct answer among the options.
// This is the content-authoring invariant the engines rely on.
func TestExerciseAnswerInOptions(t *testing.T) {
	c := New()
	for _, lang := range c.Languages() {
		for _, lesson := range c.Lessons(lang.Code) {
			for _, ex := range lesson.Exercises {
				found := false
				for _, opt := range ex.Options {
					if opt == ex.CorrectAnswer {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s lesson %d: answer %q not in options %v",
						lang.Code, lesson.LessonNumber, ex.CorrectAnswer, ex.Options)
				}
				if ex.Points <= 0 {
					t.Errorf("%s lesson %d: non-positive points %d", lang.Code, lesson.LessonNumber, ex.Points)
				}
			}
		}
	}
}

func TestTotalLines(t *testing.T) {
	c := New()
	l := c.Lesson("es", 1)
	if l == nil {
		t.Fatal("Lesson(es, 1) = nil")
	}
	if got := l.TotalLines(); got != 4 {
		t.Errorf("TotalLines() = %d, want 4", got)
	}
}
