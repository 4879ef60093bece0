package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type RecipeHandler struct {
	store *store.Store
}

func NewRecipeHandler(s *store.Store) *RecipeHandler {
	return &RecipeHandler{store: s}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("", h.SetRecipes)
		recipes.POST("", h.CreateRecipe)
	}
}

// ListRecipes filters the recipe collection in memory: q matches title and
// description, category is exact, exclude drops recipes containing any of
// the named ingredients.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	recipes := state.Recipes

	if search := c.Query("q"); search != "" {
		like := strings.ToLower(search)
		filtered := make([]models.Recipe, 0, len(recipes))
		for _, r := range recipes {
			if strings.Contains(strings.ToLower(r.Title), like) ||
				strings.Contains(strings.ToLower(r.Description), like) {
				filtered = append(filtered, r)
			}
		}
		recipes = filtered
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]models.Recipe, 0, len(recipes))
		for _, r := range recipes {
			if r.Category == category {
				filtered = append(filtered, r)
			}
		}
		recipes = filtered
	}

	if ex := c.Query("exclude"); ex != "" {
		for _, a := range strings.Split(ex, ",") {
			needle := strings.ToLower(strings.TrimSpace(a))
			filtered := make([]models.Recipe, 0, len(recipes))
			for _, r := range recipes {
				if !recipeContains(r, needle) {
					filtered = append(filtered, r)
				}
			}
			recipes = filtered
		}
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func recipeContains(r models.Recipe, ingredient string) bool {
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), ingredient) {
			return true
		}
	}
	return false
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}
	id := c.Param("id")
	for _, r := range state.Recipes {
		if r.ID == id {
			c.JSON(http.StatusOK, r)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
}

func (h *RecipeHandler) SetRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := c.ShouldBindJSON(&recipes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetRecipes(recipes))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": state.Recipes})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	state, err := h.store.Dispatch(store.AddRecipe(recipe))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.Recipes[len(state.Recipes)-1])
}
