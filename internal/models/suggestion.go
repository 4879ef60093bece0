package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// AIMenuSuggestion is a precomputed menu recommendation for a user.
type AIMenuSuggestion struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"userId"`
	MealType             MealType        `json:"mealType"`
	CuisineType          string          `json:"cuisineType"`
	Ingredients          []string        `json:"ingredients"`
	NutritionalInfo      NutritionalInfo `json:"nutritionalInfo"`
	EstimatedCookingTime int             `json:"estimatedCookingTime"`
	Difficulty           Difficulty      `json:"difficulty"`
	MatchScore           int             `json:"matchScore"`
	Reason               string          `json:"reason"`
}

type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
