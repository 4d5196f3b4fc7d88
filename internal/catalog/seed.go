package catalog

import "fmt"

// seededLessonCount is how many lessons ship with the binary per
// language. Remaining lessons arrive via content packs.
const seededLessonCount = 10

var lessonTitles = []string{
	"Basic Greetings", "Introducing Yourself", "Numbers and Time",
	"Family and Friends", "Food and Drinks", "Shopping and Money",
	"Directions and Transportation", "Weather and Seasons",
	"Hobbies and Interests", "Travel and Accommodation",
}

var lessonDescriptions = []string{
	"Learn essential greetings and polite expressions",
	"Master self-introduction and personal information",
	"Practice numbers, telling time, and dates",
	"Describe family relationships and friendships",
	"Order food and discuss dietary preferences",
	"Navigate shopping situations and handle money",
	"Ask for directions and use public transportation",
	"Discuss weather conditions and seasonal activities",
	"Talk about your interests and free time activities",
	"Plan trips and communicate at hotels",
}

// seed populates the catalog with the built-in languages and lessons.
func (c *Catalog) seed() {
	languages := []Language{
		{Code: "es", Name: "Spanish", Flag: "🇪🇸", Difficulty: DifficultyBeginner, TotalLessons: 50},
		{Code: "fr", Name: "French", Flag: "🇫🇷", Difficulty: DifficultyBeginner, TotalLessons: 50},
		{Code: "de", Name: "German", Flag: "🇩🇪", Difficulty: DifficultyIntermediate, TotalLessons: 50},
		{Code: "it", Name: "Italian", Flag: "🇮🇹", Difficulty: DifficultyBeginner, TotalLessons: 50},
		{Code: "pt", Name: "Portuguese", Flag: "🇵🇹", Difficulty: DifficultyBeginner, TotalLessons: 50},
		{Code: "ja", Name: "Japanese", Flag: "🇯🇵", Difficulty: DifficultyAdvanced, TotalLessons: 75},
		{Code: "ko", Name: "Korean", Flag: "🇰🇷", Difficulty: DifficultyAdvanced, TotalLessons: 75},
		{Code: "zh", Name: "Chinese", Flag: "🇨🇳", Difficulty: DifficultyAdvanced, TotalLessons: 75},
		{Code: "ru", Name: "Russian", Flag: "🇷🇺", Difficulty: DifficultyIntermediate, TotalLessons: 60},
		{Code: "ar", Name: "Arabic", Flag: "🇸🇦", Difficulty: DifficultyAdvanced, TotalLessons: 75},
	}
	for _, lang := range languages {
		c.addLanguage(lang)
		var lessons []Lesson
		for n := 1; n <= seededLessonCount; n++ {
			lessons = append(lessons, buildLesson(lang, n))
		}
		// Seed content is duplicate-free by construction.
		_ = c.addLessons(lang.Code, lessons)
	}
}

// buildLesson assembles one seeded lesson for a language.
func buildLesson(lang Language, number int) Lesson {
	vocab := vocabularyFor(lang.Code, number)
	return Lesson{
		Title:        fmt.Sprintf("Lesson %d: %s", number, lessonTitles[number-1]),
		Description:  lessonDescriptions[number-1],
		LanguageCode: lang.Code,
		LessonNumber: number,
		Vocabulary:   vocab,
		Dialogues:    dialoguesFor(lang.Code),
		Exercises:    exercisesFor(lang, vocab),
		Difficulty:   lessonDifficulty(number),
	}
}

// lessonDifficulty ramps difficulty with lesson number.
func lessonDifficulty(number int) Difficulty {
	switch {
	case number <= 3:
		return DifficultyBeginner
	case number <= 7:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

func vocabularyFor(code string, number int) []VocabularyItem {
	switch code {
	case "es":
		return spanishVocabulary(number)
	case "fr":
		return frenchVocabulary(number)
	case "de":
		return germanVocabulary(number)
	default:
		return defaultVocabulary()
	}
}

func spanishVocabulary(number int) []VocabularyItem {
	if number == 1 {
		return []VocabularyItem{
			{Word: "Hola", Translation: "Hello", Pronunciation: "OH-lah", Example: "Hola, ¿cómo estás?", ExampleTranslation: "Hello, how are you?"},
			{Word: "Gracias", Translation: "Thank you", Pronunciation: "GRAH-see-ahs", Example: "Gracias por tu ayuda", ExampleTranslation: "Thank you for your help"},
			{Word: "Por favor", Translation: "Please", Pronunciation: "por fah-VOR", Example: "Un café, por favor", ExampleTranslation: "A coffee, please"},
			{Word: "Adiós", Translation: "Goodbye", Pronunciation: "ah-DYOHS", Example: "Adiós, hasta mañana", ExampleTranslation: "Goodbye, see you tomorrow"},
			{Word: "Disculpe", Translation: "Excuse me", Pronunciation: "dees-KOOL-peh", Example: "Disculpe, ¿dónde está el baño?", ExampleTranslation: "Excuse me, where is the bathroom?"},
		}
	}
	return []VocabularyItem{
		{Word: "Buenos días", Translation: "Good morning", Pronunciation: "BWAY-nohs DEE-ahs", Example: "Buenos días, señora", ExampleTranslation: "Good morning, ma'am"},
		{Word: "Buenas tardes", Translation: "Good afternoon", Pronunciation: "BWAY-nahs TAR-dehs", Example: "Buenas tardes, doctor", ExampleTranslation: "Good afternoon, doctor"},
	}
}

func frenchVocabulary(number int) []VocabularyItem {
	if number == 1 {
		return []VocabularyItem{
			{Word: "Bonjour", Translation: "Hello", Pronunciation: "bon-ZHOOR", Example: "Bonjour, comment allez-vous?", ExampleTranslation: "Hello, how are you?"},
			{Word: "Merci", Translation: "Thank you", Pronunciation: "mer-SEE", Example: "Merci beaucoup", ExampleTranslation: "Thank you very much"},
			{Word: "S'il vous plaît", Translation: "Please", Pronunciation: "seel voo PLEH", Example: "Un café, s'il vous plaît", ExampleTranslation: "A coffee, please"},
			{Word: "Au revoir", Translation: "Goodbye", Pronunciation: "oh ruh-VWAR", Example: "Au revoir, à bientôt", ExampleTranslation: "Goodbye, see you soon"},
			{Word: "Excusez-moi", Translation: "Excuse me", Pronunciation: "ek-skew-zay MWAH", Example: "Excusez-moi, où sont les toilettes?", ExampleTranslation: "Excuse me, where are the restrooms?"},
		}
	}
	return []VocabularyItem{
		{Word: "Bonsoir", Translation: "Good evening", Pronunciation: "bon-SWAHR", Example: "Bonsoir, madame", ExampleTranslation: "Good evening, ma'am"},
	}
}

func germanVocabulary(number int) []VocabularyItem {
	if number == 1 {
		return []VocabularyItem{
			{Word: "Hallo", Translation: "Hello", Pronunciation: "HAH-loh", Example: "Hallo, wie geht es dir?", ExampleTranslation: "Hello, how are you?"},
			{Word: "Danke", Translation: "Thank you", Pronunciation: "DAHN-keh", Example: "Danke schön", ExampleTranslation: "Thank you very much"},
			{Word: "Bitte", Translation: "Please", Pronunciation: "BIT-teh", Example: "Ein Kaffee, bitte", ExampleTranslation: "A coffee, please"},
			{Word: "Auf Wiedersehen", Translation: "Goodbye", Pronunciation: "owf VEE-der-zayn", Example: "Auf Wiedersehen, bis morgen", ExampleTranslation: "Goodbye, see you tomorrow"},
			{Word: "Entschuldigung", Translation: "Excuse me", Pronunciation: "ent-SHOOL-dee-goong", Example: "Entschuldigung, wo ist die Toilette?", ExampleTranslation: "Excuse me, where is the restroom?"},
		}
	}
	return []VocabularyItem{
		{Word: "Guten Morgen", Translation: "Good morning", Pronunciation: "GOO-ten MOR-gen", Example: "Guten Morgen, Herr Schmidt", ExampleTranslation: "Good morning, Mr. Schmidt"},
	}
}

func defaultVocabulary() []VocabularyItem {
	return []VocabularyItem{
		{Word: "Hello", Translation: "Hello", Pronunciation: "heh-LOH", Example: "Hello, how are you?", ExampleTranslation: "Hello, how are you?"},
		{Word: "Thank you", Translation: "Thank you", Pronunciation: "THANK you", Example: "Thank you for your help", ExampleTranslation: "Thank you for your help"},
	}
}

func dialoguesFor(code string) []Dialogue {
	return []Dialogue{{
		Title:        "Basic Conversation",
		Scenario:     "Meeting someone for the first time",
		Participants: []string{"Alex", "Maria"},
		Lines: []DialogueLine{
			{Speaker: "Alex", Text: greeting(code), Translation: "Hello!"},
			{Speaker: "Maria", Text: greetingResponse(code), Translation: "Hello! How are you?"},
			{Speaker: "Alex", Text: wellResponse(code), Translation: "I'm fine, thank you. And you?"},
			{Speaker: "Maria", Text: wellToo(code), Translation: "I'm well too, thanks!"},
		},
	}}
}

func greeting(code string) string {
	switch code {
	case "es":
		return "¡Hola!"
	case "fr":
		return "Bonjour!"
	case "de":
		return "Hallo!"
	case "it":
		return "Ciao!"
	case "pt":
		return "Olá!"
	default:
		return "Hello!"
	}
}

func greetingResponse(code string) string {
	switch code {
	case "es":
		return "¡Hola! ¿Cómo estás?"
	case "fr":
		return "Bonjour! Comment allez-vous?"
	case "de":
		return "Hallo! Wie geht es dir?"
	case "it":
		return "Ciao! Come stai?"
	case "pt":
		return "Olá! Como está?"
	default:
		return "Hello! How are you?"
	}
}

func wellResponse(code string) string {
	switch code {
	case "es":
		return "Estoy bien, gracias. ¿Y tú?"
	case "fr":
		return "Je vais bien, merci. Et vous?"
	case "de":
		return "Mir geht es gut, danke. Und dir?"
	case "it":
		return "Sto bene, grazie. E tu?"
	case "pt":
		return "Estou bem, obrigado. E você?"
	default:
		return "I'm fine, thank you. And you?"
	}
}

func wellToo(code string) string {
	switch code {
	case "es":
		return "¡Yo también estoy bien, gracias!"
	case "fr":
		return "Je vais bien aussi, merci!"
	case "de":
		return "Mir geht es auch gut, danke!"
	case "it":
		return "Anch'io sto bene, grazie!"
	case "pt":
		return "Eu também estou bem, obrigada!"
	default:
		return "I'm well too, thanks!"
	}
}

// exercisesFor derives exercises from a lesson's vocabulary.
func exercisesFor(lang Language, vocab []VocabularyItem) []Exercise {
	var exercises []Exercise

	if len(vocab) > 0 {
		first := vocab[0]
		exercises = append(exercises, Exercise{
			Type:          MultipleChoice,
			Question:      fmt.Sprintf("What does '%s' mean?", first.Word),
			Options:       []string{first.Translation, "Goodbye", "Please", "Thank you"},
			CorrectAnswer: first.Translation,
			Explanation:   fmt.Sprintf("'%s' means '%s' in English.", first.Word, first.Translation),
			Points:        10,
		})
	}

	if len(vocab) > 1 {
		second := vocab[1]
		exercises = append(exercises, Exercise{
			Type:          Translation,
			Question:      fmt.Sprintf("How do you say '%s' in %s?", second.Translation, lang.Name),
			Options:       []string{second.Word, vocab[0].Word, "incorrect", "wrong"},
			CorrectAnswer: second.Word,
			Explanation:   fmt.Sprintf("'%s' is '%s' in %s.", second.Translation, second.Word, lang.Name),
			Points:        15,
		})
	}

	return exercises
}
