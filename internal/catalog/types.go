package catalog

// Difficulty is the tier of a language or lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns the difficulty tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// Valid reports whether d is a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ExerciseType identifies the kind of exercise.
type ExerciseType string

const (
	MultipleChoice ExerciseType = "multipleChoice"
	FillInTheBlank ExerciseType = "fillInTheBlank"
	Translation    ExerciseType = "translation"
	Pronunciation  ExerciseType = "pronunciation"
	Listening      ExerciseType = "listening"
)

// AllExerciseTypes returns all exercise types in display order.
func AllExerciseTypes() []ExerciseType {
	return []ExerciseType{MultipleChoice, FillInTheBlank, Translation, Pronunciation, Listening}
}

// DisplayName returns a human-readable label for the exercise type.
func (t ExerciseType) DisplayName() string {
	switch t {
	case MultipleChoice:
		return "Multiple Choice"
	case FillInTheBlank:
		return "Fill in the Blank"
	case Translation:
		return "Translation"
	case Pronunciation:
		return "Pronunciation"
	case Listening:
		return "Listening"
	default:
		return string(t)
	}
}

// Language is an immutable catalog entry for a learnable language.
type Language struct {
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Flag         string     `json:"flag"`
	Difficulty   Difficulty `json:"difficulty"`
	TotalLessons int        `json:"totalLessons"`
}

// VocabularyItem is a single word with its learning aids.
type VocabularyItem struct {
	Word               string `json:"word"`
	Translation        string `json:"translation"`
	Pronunciation      string `json:"pronunciation"`
	Example            string `json:"example"`
	ExampleTranslation string `json:"exampleTranslation"`
}

// DialogueLine is one utterance within a dialogue.
type DialogueLine struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

// Dialogue is a scripted conversation.
type Dialogue struct {
	Title        string         `json:"title"`
	Scenario     string         `json:"scenario"`
	Participants []string       `json:"participants"`
	Lines        []DialogueLine `json:"lines"`
}

// Exercise is a single quiz question. Correctness is by exact string
// match against CorrectAnswer; the catalog guarantees the correct answer
// appears among the options.
type Exercise struct {
	Type          ExerciseType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Points        int          `json:"points"`
}

// Lesson is an immutable unit of study content. Completion status lives
// in the learner's progress record, never here.
type Lesson struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	LanguageCode string           `json:"languageCode"`
	LessonNumber int              `json:"lessonNumber"`
	Vocabulary   []VocabularyItem `json:"vocabulary"`
	Dialogues    []Dialogue       `json:"dialogues"`
	Exercises    []Exercise       `json:"exercises"`
	Difficulty   Difficulty       `json:"difficulty"`
}

// TotalLines returns the number of dialogue lines across all dialogues.
func (l *Lesson) TotalLines() int {
	n := 0
	for _, d := range l.Dialogues {
		n += len(d.Lines)
	}
	return n
}
