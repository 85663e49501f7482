package seed

import "quizmaster-service/internal/models"

// FallbackQuestions returns the small embedded set served when the question
// store is unreachable at session start. Filtered by category when one is
// requested; an unknown category yields an empty set.
func FallbackQuestions(category string) []models.Question {
	fallback := []models.Question{
		{
			ID:            "fallback-1",
			Question:      "What is 2 + 2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Difficulty:    models.DifficultyEasy,
			Category:      "Math",
			Explanation:   "2 + 2 equals 4. This is basic arithmetic addition.",
		},
		{
			ID:            "fallback-2",
			Question:      "What is the capital of France?",
			Options:       []string{"London", "Paris", "Berlin", "Madrid"},
			CorrectAnswer: 1,
			Difficulty:    models.DifficultyEasy,
			Category:      "Geography",
			Explanation:   "Paris is the capital and largest city of France.",
		},
		{
			ID:            "fallback-3",
			Question:      "Which planet is closest to the Sun?",
			Options:       []string{"Venus", "Mercury", "Earth", "Mars"},
			CorrectAnswer: 1,
			Difficulty:    models.DifficultyEasy,
			Category:      "Science",
			Explanation:   "Mercury is the smallest and closest planet to the Sun in our solar system.",
		},
	}
	if category == "" {
		return fallback
	}
	var filtered []models.Question
	for _, q := range fallback {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// StarterCatalog is the fixed question set inserted by the one-shot seeding
// operation.
func StarterCatalog() []models.Question {
	return []models.Question{
		{Question: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Math", Explanation: "2 + 2 equals 4. This is basic arithmetic addition."},
		{Question: "What is 10 - 3?", Options: []string{"6", "7", "8", "9"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Math", Explanation: "10 - 3 equals 7. This is basic subtraction."},
		{Question: "What is 5 × 3?", Options: []string{"12", "15", "18", "20"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Math", Explanation: "5 × 3 equals 15. This is basic multiplication."},
		{Question: "What is 15% of 200?", Options: []string{"20", "30", "40", "50"}, CorrectAnswer: 1, Difficulty: models.DifficultyMedium, Category: "Math", Explanation: "15% of 200 = (15/100) × 200 = 30"},
		{Question: "Solve for x: 2x + 3 = 7", Options: []string{"x = 1", "x = 2", "x = 3", "x = 4"}, CorrectAnswer: 1, Difficulty: models.DifficultyMedium, Category: "Math", Explanation: "2x + 3 = 7 → 2x = 4 → x = 2"},
		{Question: "What is the area of a rectangle with length 8 and width 5?", Options: []string{"35", "36", "40", "45"}, CorrectAnswer: 2, Difficulty: models.DifficultyMedium, Category: "Math", Explanation: "Area = length × width = 8 × 5 = 40"},
		{Question: "What is the derivative of x³ + 2x²?", Options: []string{"3x² + 4x", "3x² + 2x", "x² + 4x", "3x + 4"}, CorrectAnswer: 0, Difficulty: models.DifficultyHard, Category: "Math", Explanation: "Using power rule: d/dx(x³) = 3x² and d/dx(2x²) = 4x, so the answer is 3x² + 4x"},
		{Question: "What is the limit of (x² - 1)/(x - 1) as x approaches 1?", Options: []string{"0", "1", "2", "undefined"}, CorrectAnswer: 2, Difficulty: models.DifficultyHard, Category: "Math", Explanation: "By factoring: (x-1)(x+1)/(x-1) = x+1, so limit is 2"},
		{Question: "What is the capital of France?", Options: []string{"London", "Paris", "Berlin", "Madrid"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Geography", Explanation: "Paris is the capital and largest city of France."},
		{Question: "Which river is the longest in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectAnswer: 1, Difficulty: models.DifficultyMedium, Category: "Geography", Explanation: "The Nile River is generally considered the longest river in the world."},
		{Question: "What is the smallest country in the world?", Options: []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, CorrectAnswer: 1, Difficulty: models.DifficultyMedium, Category: "Geography", Explanation: "Vatican City is the smallest country in the world by land area."},
		{Question: "What is the highest mountain in the world?", Options: []string{"K2", "Kangchenjunga", "Lhotse", "Mount Everest"}, CorrectAnswer: 3, Difficulty: models.DifficultyMedium, Category: "Geography", Explanation: "Mount Everest is the highest mountain in the world at 8,848 meters."},
		{Question: "Which planet is closest to the Sun?", Options: []string{"Venus", "Mercury", "Earth", "Mars"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Science", Explanation: "Mercury is the smallest and closest planet to the Sun in our solar system."},
		{Question: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, CorrectAnswer: 2, Difficulty: models.DifficultyMedium, Category: "Science", Explanation: "Au is the chemical symbol for gold, from the Latin word 'aurum'."},
		{Question: "What is the pH of pure water?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: 2, Difficulty: models.DifficultyMedium, Category: "Science", Explanation: "Pure water has a pH of 7, which is neutral."},
		{Question: "Which process do plants use to convert sunlight into chemical energy?", Options: []string{"Respiration", "Photosynthesis", "Fermentation", "Osmosis"}, CorrectAnswer: 1, Difficulty: models.DifficultyHard, Category: "Science", Explanation: "Photosynthesis is the process where plants convert sunlight into glucose (chemical energy)."},
		{Question: "Which particle is responsible for mediating the strong nuclear force?", Options: []string{"Photon", "Gluon", "W boson", "Graviton"}, CorrectAnswer: 1, Difficulty: models.DifficultyHard, Category: "Science", Explanation: "Gluons are the particles that mediate the strong nuclear force."},
		{Question: "In what year did World War II end?", Options: []string{"1944", "1945", "1946", "1947"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "History", Explanation: "World War II ended in 1945."},
		{Question: "In what year did the Titanic sink?", Options: []string{"1912", "1915", "1920", "1905"}, CorrectAnswer: 0, Difficulty: models.DifficultyMedium, Category: "History", Explanation: "The RMS Titanic sank in 1912 after hitting an iceberg on April 15."},
		{Question: "In what year did the Berlin Wall fall?", Options: []string{"1987", "1988", "1989", "1990"}, CorrectAnswer: 2, Difficulty: models.DifficultyMedium, Category: "History", Explanation: "The Berlin Wall fell in 1989, leading to the reunification of Germany."},
		{Question: "Who wrote 'Romeo and Juliet'?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, CorrectAnswer: 1, Difficulty: models.DifficultyEasy, Category: "Literature", Explanation: "William Shakespeare wrote 'Romeo and Juliet'."},
		{Question: "Who wrote 'Pride and Prejudice'?", Options: []string{"Emily Brontë", "Charlotte Brontë", "Jane Austen", "George Eliot"}, CorrectAnswer: 2, Difficulty: models.DifficultyMedium, Category: "Literature", Explanation: "Jane Austen wrote 'Pride and Prejudice' in 1813."},
		{Question: "Who wrote '1984'?", Options: []string{"Aldous Huxley", "George Orwell", "Ray Bradbury", "Margaret Atwood"}, CorrectAnswer: 1, Difficulty: models.DifficultyMedium, Category: "Literature", Explanation: "George Orwell wrote '1984' in 1949."},
		{Question: "Who wrote 'One Hundred Years of Solitude'?", Options: []string{"Jorge Luis Borges", "Gabriel García Márquez", "Pablo Neruda", "Julio Cortázar"}, CorrectAnswer: 1, Difficulty: models.DifficultyHard, Category: "Literature", Explanation: "Gabriel García Márquez wrote 'One Hundred Years of Solitude'."},
	}
}
