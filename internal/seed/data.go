// Package seed provides the demo dataset loaded in development
// environments so the API serves a populated snapshot out of the box.
package seed

import (
	"encoding/json"
	"time"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// DemoState returns a fully populated snapshot mirroring the demo
// dataset the mobile client ships with.
func DemoState() store.AppState {
	state := store.InitialState()

	state.CurrentUser = &models.User{
		ID:                 "user-1",
		Name:               "John Doe",
		Email:              "john@example.com",
		Phone:              "+1 (555) 987-6543",
		Address:            "123 Main St, City, State 12345",
		UserType:           models.UserTypeUser,
		CreatedAt:          date("2024-01-01"),
		LoyaltyPoints:      250,
		TotalBookings:      5,
		PreferredLanguage:  models.LanguageEN,
		DietaryPreferences: []string{"vegetarian", "gluten-free"},
		Allergens:          []string{"nuts", "shellfish"},
		KitchenRating:      4.5,
		BehaviorRating:     4.8,
		Subscriptions:      []string{},
	}

	state.Chefs = demoChefs()
	state.Bookings = demoBookings()
	state.Reviews = demoReviews()
	state.Subscriptions = []models.Subscription{
		{
			ID:            "sub-1",
			UserID:        "user-1",
			Type:          "basic-10",
			SessionsTotal: 10,
			SessionsUsed:  3,
			Discount:      15,
			StartDate:     date("2024-01-01"),
			EndDate:       date("2024-04-01"),
			IsActive:      true,
			Price:         680,
		},
	}
	state.LoyaltyRewards = demoRewards()
	state.AISuggestions = demoSuggestions()
	state.Notifications = demoNotifications()
	state.Invoices = demoInvoices()
	state.Recipes = demoRecipes()
	state.MealPlans = demoMealPlans()

	return state
}

func demoChefs() []models.Chef {
	return []models.Chef{
		{
			ID:           "1",
			Name:         "Maria Rodriguez",
			Email:        "maria@example.com",
			Phone:        "+1 (555) 123-4567",
			ProfileImage: "https://images.pexels.com/photos/3768894/pexels-photo-3768894.jpeg?auto=compress&cs=tinysrgb&w=400",
			Bio:          "Passionate about authentic Mexican cuisine with 10 years of experience in fine dining.",
			Specialties:  []string{"Mexican", "Latin American", "Vegetarian"},
			Rating:       4.8,
			ReviewCount:  127,
			PriceRange:   "$80-120/hour",
			Location:     "Downtown Area",
			Availability: []models.TimeSlot{
				{Date: "2024-01-15", StartTime: "18:00", EndTime: "22:00"},
				{Date: "2024-01-16", StartTime: "17:00", EndTime: "21:00"},
			},
			IsAvailable:       true,
			ExperienceYears:   10,
			Verified:          true,
			BackgroundChecked: true,
			Badges: []models.Badge{
				{ID: "1", Name: "Master Chef", Icon: "chef-hat", Description: "Completed advanced culinary training", EarnedAt: date("2023-01-01")},
				{ID: "2", Name: "Health Expert", Icon: "salad", Description: "Specialized in healthy cooking", EarnedAt: date("2023-06-01")},
			},
			Languages:            []models.Language{models.LanguageEN, models.LanguageAZ},
			BringsIngredients:    true,
			OffersCleanup:        true,
			CleanupPrice:         25,
			LiveStreamingEnabled: true,
			SocialMediaLinks: models.SocialMediaLinks{
				Instagram: "@mariachef",
				TikTok:    "@mariarodriguez",
			},
			CurrentLocation: &models.GeoLocation{
				Latitude:  40.7128,
				Longitude: -74.0060,
				Address:   "En route to customer",
			},
			UserRating: 4.9,
		},
		{
			ID:           "2",
			Name:         "James Chen",
			Email:        "james@example.com",
			Phone:        "+1 (555) 234-5678",
			ProfileImage: "https://images.pexels.com/photos/4551832/pexels-photo-4551832.jpeg?auto=compress&cs=tinysrgb&w=400",
			Bio:          "Specializing in Asian fusion and healthy meal prep with modern techniques.",
			Specialties:  []string{"Asian Fusion", "Healthy", "Gluten-Free"},
			Rating:       4.9,
			ReviewCount:  89,
			PriceRange:   "$90-130/hour",
			Location:     "Uptown District",
			Availability: []models.TimeSlot{
				{Date: "2024-01-15", StartTime: "19:00", EndTime: "23:00"},
			},
			IsAvailable:       true,
			ExperienceYears:   8,
			Verified:          true,
			BackgroundChecked: true,
			Badges: []models.Badge{
				{ID: "3", Name: "Innovation Award", Icon: "trophy", Description: "Creative cooking techniques", EarnedAt: date("2023-03-01")},
			},
			Languages:         []models.Language{models.LanguageEN, models.LanguageRU},
			BringsIngredients: true,
			SocialMediaLinks: models.SocialMediaLinks{
				YouTube: "JamesChenCooks",
			},
			UserRating: 4.7,
		},
		{
			ID:           "3",
			Name:         "Sophie Laurent",
			Email:        "sophie@example.com",
			Phone:        "+1 (555) 345-6789",
			ProfileImage: "https://images.pexels.com/photos/3913025/pexels-photo-3913025.jpeg?auto=compress&cs=tinysrgb&w=400",
			Bio:          "French culinary trained chef specializing in classical French cuisine and pastries.",
			Specialties:  []string{"French", "Pastries", "Fine Dining"},
			Rating:       4.7,
			ReviewCount:  156,
			PriceRange:   "$100-150/hour",
			Location:     "Midtown",
			Availability: []models.TimeSlot{
				{Date: "2024-01-16", StartTime: "18:30", EndTime: "22:30"},
			},
			IsAvailable:       true,
			ExperienceYears:   12,
			Verified:          true,
			BackgroundChecked: true,
			Badges: []models.Badge{
				{ID: "4", Name: "Pastry Expert", Icon: "cupcake", Description: "Master of French pastries", EarnedAt: date("2022-12-01")},
			},
			Languages:            []models.Language{models.LanguageEN, models.LanguageRU},
			OffersCleanup:        true,
			CleanupPrice:         30,
			LiveStreamingEnabled: true,
			SocialMediaLinks: models.SocialMediaLinks{
				Instagram: "@sophielaurent",
				Facebook:  "SophieLaurentChef",
			},
			UserRating: 4.8,
		},
	}
}

func demoBookings() []models.Booking {
	return []models.Booking{
		{
			ID:               "booking-1",
			UserID:           "user-1",
			ChefID:           "1",
			MealType:         models.MealHomeStyle,
			Date:             "2024-01-15",
			Time:             "18:00",
			Duration:         3,
			TotalPrice:       240,
			Status:           models.BookingChefEnRoute,
			Address:          "123 Main St, City, State 12345",
			CreatedAt:        date("2024-01-10"),
			IngredientOption: models.IngredientsChefBrings,
			CleanupRequested: true,
			CleanupPrice:     25,
			TrackingEnabled:  true,
			ChefLocation: &models.GeoLocation{
				Latitude:  40.7128,
				Longitude: -74.0060,
				Address:   "En route",
			},
			EstimatedArrival:    "18:15",
			LoyaltyPointsEarned: 50,
			SubscriptionID:      "sub-1",
			AISuggested:         true,
		},
	}
}

func demoReviews() []models.Review {
	return []models.Review{
		{
			ID:        "review-1",
			BookingID: "booking-1",
			UserID:    "user-1",
			ChefID:    "1",
			Rating:    5,
			Comment:   "Amazing experience! Maria prepared the most delicious authentic Mexican meal.",
			CreatedAt: date("2024-01-16"),
			Type:      models.ReviewUserToChef,
			ChefCategories: &models.ChefReviewCategories{
				FoodQuality:     5,
				Punctuality:     5,
				Professionalism: 5,
				Cleanliness:     4,
				Communication:   5,
			},
		},
		{
			ID:        "review-2",
			BookingID: "booking-1",
			UserID:    "user-1",
			ChefID:    "1",
			Rating:    5,
			Comment:   "Great customer! Clean kitchen, friendly, and clear instructions.",
			CreatedAt: date("2024-01-16"),
			Type:      models.ReviewChefToUser,
			UserCategories: &models.UserReviewCategories{
				KitchenCondition: 5,
				Behavior:         5,
				Communication:    5,
			},
		},
	}
}

func demoRewards() []models.LoyaltyReward {
	return []models.LoyaltyReward{
		{
			ID:                 "reward-1",
			Name:               "10% Off Next Booking",
			Description:        "Get 10% discount on your next chef booking",
			PointsRequired:     100,
			DiscountPercentage: 10,
			Type:               models.RewardDiscount,
			IsActive:           true,
		},
		{
			ID:             "reward-2",
			Name:           "Free Cleanup Service",
			Description:    "Complimentary post-cooking cleanup",
			PointsRequired: 200,
			Type:           models.RewardUpgrade,
			IsActive:       true,
		},
		{
			ID:                 "reward-3",
			Name:               "Free Cooking Session",
			Description:        "One complimentary 2-hour cooking session",
			PointsRequired:     500,
			DiscountPercentage: 100,
			Type:               models.RewardFreeSession,
			IsActive:           true,
		},
	}
}

func demoSuggestions() []models.AIMenuSuggestion {
	return []models.AIMenuSuggestion{
		{
			ID:          "ai-1",
			UserID:      "user-1",
			MealType:    models.MealDietFriendly,
			CuisineType: "Mediterranean",
			Ingredients: []string{"quinoa", "grilled chicken", "vegetables", "olive oil"},
			NutritionalInfo: models.NutritionalInfo{
				Calories: 450,
				Protein:  35,
				Carbs:    40,
				Fat:      18,
				Fiber:    8,
			},
			EstimatedCookingTime: 45,
			Difficulty:           models.DifficultyMedium,
			MatchScore:           95,
			Reason:               "Based on your vegetarian preference and gluten-free diet",
		},
		{
			ID:          "ai-2",
			UserID:      "user-1",
			MealType:    models.MealHomeStyle,
			CuisineType: "Italian",
			Ingredients: []string{"gluten-free pasta", "tomatoes", "basil", "mozzarella"},
			NutritionalInfo: models.NutritionalInfo{
				Calories: 520,
				Protein:  22,
				Carbs:    65,
				Fat:      16,
				Fiber:    4,
			},
			EstimatedCookingTime: 30,
			Difficulty:           models.DifficultyEasy,
			MatchScore:           88,
			Reason:               "Comfort food that matches your dietary restrictions",
		},
	}
}

func demoNotifications() []models.Notification {
	now := time.Now().UTC()
	enRoute, _ := json.Marshal(models.ChefEnRouteData{ChefID: "1", ETA: "15 minutes"})
	loyalty, _ := json.Marshal(models.LoyaltyRewardData{PointsEarned: 50, TotalPoints: 250})
	return []models.Notification{
		{
			ID:        "notif-1",
			UserID:    "user-1",
			Type:      models.NotifChefEnRoute,
			Title:     "Chef is on the way!",
			Message:   "Maria Rodriguez is heading to your location. ETA: 15 minutes",
			CreatedAt: now,
			Data:      enRoute,
		},
		{
			ID:        "notif-2",
			UserID:    "user-1",
			Type:      models.NotifLoyaltyReward,
			Title:     "Loyalty Points Earned!",
			Message:   "You earned 50 points from your last booking. Total: 250 points",
			CreatedAt: now.Add(-time.Hour),
			Data:      loyalty,
		},
	}
}

func demoInvoices() []models.Invoice {
	return []models.Invoice{
		{
			ID:            "inv-1",
			BookingID:     "booking-1",
			UserID:        "user-1",
			ChefID:        "1",
			InvoiceNumber: "INV-2024-001",
			IssueDate:     date("2024-01-15"),
			DueDate:       date("2024-01-30"),
			Subtotal:      240,
			Tax:           24,
			Total:         264,
			Status:        models.InvoicePending,
		},
		{
			ID:            "inv-2",
			BookingID:     "booking-2",
			UserID:        "user-1",
			ChefID:        "2",
			InvoiceNumber: "INV-2024-002",
			IssueDate:     date("2024-01-10"),
			DueDate:       date("2024-01-25"),
			Subtotal:      180,
			Tax:           18,
			Total:         198,
			Status:        models.InvoicePaid,
			CorporateDetails: &models.CorporateDetails{
				CompanyName:    "Tech Corp Inc.",
				TaxID:          "TC123456789",
				BillingAddress: "456 Business Ave, Corporate City, CC 54321",
				ContactPerson:  "Jane Smith",
				Department:     "HR",
			},
		},
	}
}

func demoRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "recipe-1",
			Title:       "Quinoa Power Bowl",
			Description: "A bright Mediterranean bowl with grilled chicken and roasted vegetables.",
			Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=400",
			CookingTime: 45,
			Difficulty:  models.DifficultyMedium,
			Servings:    2,
			Category:    "Healthy",
			Tags:        []string{"gluten-free", "high-protein", "mediterranean"},
			Rating:      4.6,
			ReviewCount: 42,
			Calories:    450,
			Ingredients: []models.Ingredient{
				{ID: "ing-1", Name: "Quinoa", Amount: "1", Unit: "cup"},
				{ID: "ing-2", Name: "Chicken breast", Amount: "300", Unit: "g"},
				{ID: "ing-3", Name: "Olive oil", Amount: "2", Unit: "tbsp"},
				{ID: "ing-4", Name: "Feta cheese", Amount: "50", Unit: "g", Optional: true},
			},
			Instructions: []models.Instruction{
				{ID: "step-1", Step: 1, Title: "Cook the quinoa", Description: "Rinse and simmer the quinoa in salted water until tender.", Timer: 15},
				{ID: "step-2", Step: 2, Title: "Grill the chicken", Description: "Season and grill the chicken over medium-high heat.", Timer: 12, Temperature: "200C"},
				{ID: "step-3", Step: 3, Title: "Assemble", Description: "Slice the chicken and layer everything over the quinoa."},
			},
			NutritionFacts: models.NutritionFacts{
				Calories: 450, Protein: 35, Carbs: 40, Fat: 18, Fiber: 8, Sugar: 4, Sodium: 520,
			},
			Author:    models.RecipeAuthor{Name: "James Chen", Verified: true},
			CreatedAt: date("2024-01-05"),
		},
		{
			ID:          "recipe-2",
			Title:       "Classic Chiles Rellenos",
			Description: "Roasted poblano peppers stuffed with cheese and fried in a light egg batter.",
			Image:       "https://images.pexels.com/photos/2092507/pexels-photo-2092507.jpeg?auto=compress&cs=tinysrgb&w=400",
			CookingTime: 60,
			Difficulty:  models.DifficultyHard,
			Servings:    4,
			Category:    "Mexican",
			Tags:        []string{"vegetarian", "traditional"},
			Rating:      4.8,
			ReviewCount: 67,
			Calories:    380,
			Ingredients: []models.Ingredient{
				{ID: "ing-5", Name: "Poblano peppers", Amount: "4", Unit: "pieces"},
				{ID: "ing-6", Name: "Oaxaca cheese", Amount: "250", Unit: "g"},
				{ID: "ing-7", Name: "Eggs", Amount: "3", Unit: "pieces"},
			},
			Instructions: []models.Instruction{
				{ID: "step-4", Step: 1, Title: "Roast the peppers", Description: "Char the poblanos over an open flame and steam them in a covered bowl.", Timer: 10},
				{ID: "step-5", Step: 2, Title: "Stuff and batter", Description: "Peel, stuff with cheese, and coat in whipped egg batter."},
				{ID: "step-6", Step: 3, Title: "Fry", Description: "Fry until golden and serve with warm tomato sauce.", Timer: 8},
			},
			NutritionFacts: models.NutritionFacts{
				Calories: 380, Protein: 18, Carbs: 14, Fat: 28, Fiber: 3, Sugar: 5, Sodium: 640,
			},
			Author:    models.RecipeAuthor{Name: "Maria Rodriguez", Verified: true},
			CreatedAt: date("2024-01-08"),
		},
	}
}

func demoMealPlans() []models.MealPlan {
	return []models.MealPlan{
		{
			ID:          "plan-1",
			UserID:      "user-1",
			Name:        "Gluten-Free Week",
			Description: "Seven days of gluten-free dinners built around pantry staples.",
			Duration:    7,
			Recipes: []models.MealPlanRecipe{
				{RecipeID: "recipe-1", Day: 1, MealType: models.SlotDinner, Scheduled: true},
				{RecipeID: "recipe-2", Day: 2, MealType: models.SlotDinner},
			},
			TotalCalories: 830,
			DietType:      "gluten-free",
			CreatedAt:     date("2024-01-12"),
			IsActive:      true,
		},
	}
}
