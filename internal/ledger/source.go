package ledger

// Source says what earned an award. The two cases share identical
// point, streak and rank effects; only lesson-set membership differs.
type Source interface {
	LanguageCode() string
	source()
}

// LessonCompletion is an award for finishing a specific lesson.
type LessonCompletion struct {
	Language     string
	LessonNumber int
}

func (s LessonCompletion) LanguageCode() string { return s.Language }
func (LessonCompletion) source()                {}

// QuizCompletion is an award for finishing a quiz. It is not tied to a
// lesson number.
type QuizCompletion struct {
	Language string
}

func (s QuizCompletion) LanguageCode() string { return s.Language }
func (QuizCompletion) source()                {}
