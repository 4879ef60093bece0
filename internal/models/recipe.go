package models

import "time"

type Recipe struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Image          string         `json:"image"`
	CookingTime    int            `json:"cookingTime"`
	Difficulty     Difficulty     `json:"difficulty"`
	Servings       int            `json:"servings"`
	Category       string         `json:"category"`
	Tags           []string       `json:"tags"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount"`
	Calories       float64        `json:"calories"`
	Ingredients    []Ingredient   `json:"ingredients"`
	Instructions   []Instruction  `json:"instructions"`
	NutritionFacts NutritionFacts `json:"nutritionFacts"`
	Author         RecipeAuthor   `json:"author"`
	IsFavorite     bool           `json:"isFavorite"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type RecipeAuthor struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Optional bool   `json:"optional,omitempty"`
}

// Instruction is one cooking step; Step orders the sequence ascending.
type Instruction struct {
	ID          string `json:"id"`
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Timer       int    `json:"timer,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}
