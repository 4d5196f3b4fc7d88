package quiz

import "github.com/vmaslov/linguo/internal/catalog"

// bonusExercises returns the curated harder questions appended to a
// daily challenge. Languages without a curated set share a default.
func bonusExercises(code string) []catalog.Exercise {
	switch code {
	case "es":
		return []catalog.Exercise{
			{
				Type:          catalog.MultipleChoice,
				Question:      "Which verb form is correct? 'Yo _____ español'",
				Options:       []string{"hablo", "hablas", "habla", "hablamos"},
				CorrectAnswer: "hablo",
				Explanation:   "'Hablo' is the first person singular form of 'hablar' (to speak).",
				Points:        20,
			},
			{
				Type:          catalog.Translation,
				Question:      "Translate: 'I would like to order a coffee'",
				Options:       []string{"Me gustaría pedir un café", "Quiero café", "Necesito café", "Café por favor"},
				CorrectAnswer: "Me gustaría pedir un café",
				Explanation:   "'Me gustaría pedir' is the polite way to say 'I would like to order'.",
				Points:        25,
			},
		}
	case "fr":
		return []catalog.Exercise{
			{
				Type:          catalog.MultipleChoice,
				Question:      "Which article is correct? '_____ maison'",
				Options:       []string{"la", "le", "les", "un"},
				CorrectAnswer: "la",
				Explanation:   "'Maison' is feminine, so it takes the feminine article 'la'.",
				Points:        20,
			},
			{
				Type:          catalog.FillInTheBlank,
				Question:      "Complete: 'Je _____ français' (I speak French)",
				Options:       []string{"parle", "parles", "parlons", "parlent"},
				CorrectAnswer: "parle",
				Explanation:   "'Parle' is the first person singular form of 'parler'.",
				Points:        25,
			},
		}
	default:
		return []catalog.Exercise{
			{
				Type:          catalog.MultipleChoice,
				Question:      "What is the most polite way to greet someone?",
				Options:       []string{"Hello", "Hi", "Hey", "Good morning"},
				CorrectAnswer: "Good morning",
				Explanation:   "Time-specific greetings like 'Good morning' are generally more formal and polite.",
				Points:        15,
			},
		}
	}
}
