package services

import "github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"

// SamplePlans returns the bundled ready-made meal plans. Item nutrients are
// already scaled to the stated quantity, like any external-shape candidate.
func SamplePlans() []domain.MealPlan {
	return []domain.MealPlan{
		{
			ID:          "vegetarian-balanced",
			Name:        "Balanced Vegetarian",
			Description: "A nutritionally balanced vegetarian meal plan with Indian cuisine",
			Calories:    1950, Protein: 75, Carbs: 240, Fat: 65,
			Tags: []string{"vegetarian", "balanced", "moderate-protein"},
			Meals: map[domain.MealSlot][]domain.PlanItem{
				domain.Breakfast: {
					{Label: "Masala Dosa", Quantity: 1, Measure: "serving", Calories: 250, Protein: 5, Carbs: 45, Fats: 5},
					{Label: "Coconut Chutney", Quantity: 2, Measure: "tbsp", Calories: 80, Protein: 2, Carbs: 4, Fats: 7},
					{Label: "Sambar", Quantity: 1, Measure: "cup", Calories: 150, Protein: 6, Carbs: 20, Fats: 5},
				},
				domain.MorningSnack: {
					{Label: "Mixed Nuts", Quantity: 30, Measure: "g", Calories: 180, Protein: 6, Carbs: 5, Fats: 16},
					{Label: "Apple", Quantity: 1, Measure: "medium", Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3},
				},
				domain.Lunch: {
					{Label: "Brown Rice", Quantity: 1, Measure: "cup", Calories: 220, Protein: 5, Carbs: 45, Fats: 2},
					{Label: "Dal Tadka", Quantity: 1, Measure: "cup", Calories: 220, Protein: 12, Carbs: 30, Fats: 6},
					{Label: "Palak Paneer", Quantity: 1, Measure: "cup", Calories: 240, Protein: 11, Carbs: 10, Fats: 16},
				},
				domain.AfternoonSnack: {
					{Label: "Dhokla", Quantity: 2, Measure: "pieces", Calories: 120, Protein: 5, Carbs: 18, Fats: 3},
					{Label: "Green Chutney", Quantity: 1, Measure: "tbsp", Calories: 15, Protein: 0.5, Carbs: 2, Fats: 0.5},
				},
				domain.Dinner: {
					{Label: "Chapati", Quantity: 2, Measure: "pieces", Calories: 170, Protein: 6, Carbs: 30, Fats: 2},
					{Label: "Mixed Vegetable Curry", Quantity: 1, Measure: "cup", Calories: 150, Protein: 6, Carbs: 15, Fats: 8},
					{Label: "Raita", Quantity: 0.5, Measure: "cup", Calories: 60, Protein: 3, Carbs: 6, Fats: 2.5},
				},
				domain.EveningSnack: {
					{Label: "Masala Chai", Quantity: 1, Measure: "cup", Calories: 50, Protein: 2, Carbs: 10, Fats: 1.5},
					{Label: "Marie Biscuits", Quantity: 3, Measure: "pieces", Calories: 120, Protein: 2, Carbs: 20, Fats: 3},
				},
			},
		},
		{
			ID:          "high-protein-non-veg",
			Name:        "High Protein Non-Vegetarian",
			Description: "Protein-rich meal plan with non-vegetarian Indian dishes",
			Calories:    2200, Protein: 140, Carbs: 200, Fat: 80,
			Tags: []string{"non-vegetarian", "high-protein", "fitness"},
			Meals: map[domain.MealSlot][]domain.PlanItem{
				domain.Breakfast: {
					{Label: "Egg Bhurji", Quantity: 3, Measure: "eggs", Calories: 240, Protein: 18, Carbs: 3, Fats: 18},
					{Label: "Whole Wheat Paratha", Quantity: 2, Measure: "pieces", Calories: 200, Protein: 6, Carbs: 30, Fats: 7},
					{Label: "Low-fat Curd", Quantity: 1, Measure: "cup", Calories: 100, Protein: 10, Carbs: 12, Fats: 2},
				},
				domain.MorningSnack: {
					{Label: "Protein Shake", Quantity: 1, Measure: "serving", Calories: 150, Protein: 25, Carbs: 5, Fats: 2},
					{Label: "Banana", Quantity: 1, Measure: "medium", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4},
				},
				domain.Lunch: {
					{Label: "Tandoori Chicken", Quantity: 150, Measure: "g", Calories: 250, Protein: 30, Carbs: 2, Fats: 14},
					{Label: "Jeera Rice", Quantity: 1, Measure: "cup", Calories: 200, Protein: 4, Carbs: 40, Fats: 3},
					{Label: "Cucumber Raita", Quantity: 1, Measure: "cup", Calories: 80, Protein: 5, Carbs: 8, Fats: 2.5},
				},
				domain.AfternoonSnack: {
					{Label: "Roasted Chana", Quantity: 50, Measure: "g", Calories: 180, Protein: 10, Carbs: 20, Fats: 5},
					{Label: "Green Tea", Quantity: 1, Measure: "cup", Calories: 2, Protein: 0, Carbs: 0, Fats: 0},
				},
				domain.Dinner: {
					{Label: "Fish Curry", Quantity: 150, Measure: "g", Calories: 220, Protein: 25, Carbs: 8, Fats: 10},
					{Label: "Brown Rice", Quantity: 0.75, Measure: "cup", Calories: 165, Protein: 3.5, Carbs: 35, Fats: 1.5},
					{Label: "Stir-fried Vegetables", Quantity: 1, Measure: "cup", Calories: 100, Protein: 3, Carbs: 12, Fats: 5},
				},
				domain.EveningSnack: {
					{Label: "Greek Yogurt", Quantity: 1, Measure: "cup", Calories: 130, Protein: 15, Carbs: 8, Fats: 4},
					{Label: "Mixed Berries", Quantity: 0.5, Measure: "cup", Calories: 40, Protein: 0.5, Carbs: 10, Fats: 0.5},
				},
			},
		},
		{
			ID:          "low-carb-keto",
			Name:        "Low-Carb Keto Indian",
			Description: "Keto-friendly Indian meal plan with low carbs and high fat",
			Calories:    1800, Protein: 90, Carbs: 50, Fat: 140,
			Tags: []string{"keto", "low-carb", "high-fat"},
			Meals: map[domain.MealSlot][]domain.PlanItem{
				domain.Breakfast: {
					{Label: "Keto Paneer Bhurji", Quantity: 1, Measure: "serving", Calories: 300, Protein: 15, Carbs: 5, Fats: 25},
					{Label: "Bulletproof Coffee", Quantity: 1, Measure: "cup", Calories: 230, Protein: 0, Carbs: 0, Fats: 25},
				},
				domain.MorningSnack: {
					{Label: "Avocado", Quantity: 0.5, Measure: "medium", Calories: 160, Protein: 2, Carbs: 8, Fats: 15},
					{Label: "Almonds", Quantity: 15, Measure: "pieces", Calories: 100, Protein: 4, Carbs: 3, Fats: 9},
				},
				domain.Lunch: {
					{Label: "Tandoori Chicken", Quantity: 200, Measure: "g", Calories: 320, Protein: 40, Carbs: 2, Fats: 18},
					{Label: "Palak Paneer (No Cream)", Quantity: 1, Measure: "cup", Calories: 200, Protein: 10, Carbs: 8, Fats: 15},
					{Label: "Cauliflower Rice", Quantity: 1, Measure: "cup", Calories: 40, Protein: 2, Carbs: 8, Fats: 0},
				},
				domain.AfternoonSnack: {
					{Label: "Cheese Cubes", Quantity: 30, Measure: "g", Calories: 120, Protein: 7, Carbs: 1, Fats: 10},
					{Label: "Cucumber Slices", Quantity: 1, Measure: "cup", Calories: 16, Protein: 0.7, Carbs: 3, Fats: 0.1},
				},
				domain.Dinner: {
					{Label: "Mutton Curry (Keto)", Quantity: 150, Measure: "g", Calories: 300, Protein: 25, Carbs: 5, Fats: 20},
					{Label: "Cabbage Thoran", Quantity: 1, Measure: "cup", Calories: 90, Protein: 3, Carbs: 10, Fats: 5},
				},
				domain.EveningSnack: {
					{Label: "Keto Coconut Ladoo", Quantity: 2, Measure: "pieces", Calories: 120, Protein: 2, Carbs: 4, Fats: 12},
				},
			},
		},
		{
			ID:          "vegan-indian",
			Name:        "Vegan Indian",
			Description: "Plant-based Indian meal plan with no animal products",
			Calories:    1850, Protein: 65, Carbs: 260, Fat: 60,
			Tags: []string{"vegan", "plant-based", "dairy-free"},
			Meals: map[domain.MealSlot][]domain.PlanItem{
				domain.Breakfast: {
					{Label: "Poha", Quantity: 1, Measure: "cup", Calories: 270, Protein: 6, Carbs: 45, Fats: 8},
					{Label: "Peanuts", Quantity: 1, Measure: "tbsp", Calories: 50, Protein: 2, Carbs: 1.5, Fats: 4},
					{Label: "Fresh Orange Juice", Quantity: 1, Measure: "glass", Calories: 110, Protein: 2, Carbs: 26, Fats: 0.5},
				},
				domain.MorningSnack: {
					{Label: "Mixed Fruit Bowl", Quantity: 1, Measure: "cup", Calories: 100, Protein: 1.5, Carbs: 25, Fats: 0.5},
				},
				domain.Lunch: {
					{Label: "Rajma Curry", Quantity: 1, Measure: "cup", Calories: 220, Protein: 15, Carbs: 30, Fats: 5},
					{Label: "Brown Rice", Quantity: 1, Measure: "cup", Calories: 220, Protein: 5, Carbs: 45, Fats: 2},
					{Label: "Cucumber Salad", Quantity: 1, Measure: "cup", Calories: 45, Protein: 2, Carbs: 10, Fats: 0},
				},
				domain.AfternoonSnack: {
					{Label: "Roasted Chana", Quantity: 30, Measure: "g", Calories: 110, Protein: 6, Carbs: 12, Fats: 3},
					{Label: "Green Tea", Quantity: 1, Measure: "cup", Calories: 2, Protein: 0, Carbs: 0, Fats: 0},
				},
				domain.Dinner: {
					{Label: "Roti", Quantity: 2, Measure: "pieces", Calories: 170, Protein: 6, Carbs: 30, Fats: 2},
					{Label: "Aloo Gobi", Quantity: 1, Measure: "cup", Calories: 150, Protein: 4, Carbs: 20, Fats: 7},
					{Label: "Tofu Bhurji", Quantity: 0.5, Measure: "cup", Calories: 120, Protein: 14, Carbs: 3, Fats: 7},
				},
				domain.EveningSnack: {
					{Label: "Coconut Water", Quantity: 1, Measure: "glass", Calories: 45, Protein: 2, Carbs: 9, Fats: 0.5},
					{Label: "Dates", Quantity: 3, Measure: "pieces", Calories: 60, Protein: 0.5, Carbs: 16, Fats: 0},
				},
			},
		},
		{
			ID:          "diabetic-friendly",
			Name:        "Diabetic-Friendly Indian",
			Description: "Low glycemic index Indian meal plan suitable for diabetics",
			Calories:    1700, Protein: 85, Carbs: 180, Fat: 65,
			Tags: []string{"diabetic-friendly", "low-gi", "balanced"},
			Meals: map[domain.MealSlot][]domain.PlanItem{
				domain.Breakfast: {
					{Label: "Moong Dal Cheela", Quantity: 2, Measure: "pieces", Calories: 180, Protein: 10, Carbs: 20, Fats: 7},
					{Label: "Mint Chutney", Quantity: 2, Measure: "tbsp", Calories: 20, Protein: 1, Carbs: 3, Fats: 0.5},
					{Label: "Low-fat Curd", Quantity: 0.5, Measure: "cup", Calories: 50, Protein: 5, Carbs: 6, Fats: 1},
				},
				domain.MorningSnack: {
					{Label: "Apple", Quantity: 1, Measure: "small", Calories: 80, Protein: 0.4, Carbs: 20, Fats: 0.3},
					{Label: "Walnuts", Quantity: 6, Measure: "halves", Calories: 90, Protein: 2, Carbs: 2, Fats: 9},
				},
				domain.Lunch: {
					{Label: "Multigrain Roti", Quantity: 2, Measure: "pieces", Calories: 170, Protein: 6, Carbs: 30, Fats: 2},
					{Label: "Lauki Sabzi", Quantity: 1, Measure: "cup", Calories: 80, Protein: 2, Carbs: 10, Fats: 4},
					{Label: "Masoor Dal", Quantity: 0.5, Measure: "cup", Calories: 115, Protein: 9, Carbs: 20, Fats: 0.5},
					{Label: "Cucumber Raita", Quantity: 0.5, Measure: "cup", Calories: 40, Protein: 2.5, Carbs: 4, Fats: 1.5},
				},
				domain.AfternoonSnack: {
					{Label: "Roasted Makhana", Quantity: 30, Measure: "g", Calories: 100, Protein: 3.5, Carbs: 15, Fats: 0.1},
					{Label: "Green Tea", Quantity: 1, Measure: "cup", Calories: 2, Protein: 0, Carbs: 0, Fats: 0},
				},
				domain.Dinner: {
					{Label: "Grilled Fish", Quantity: 120, Measure: "g", Calories: 180, Protein: 25, Carbs: 0, Fats: 8},
					{Label: "Brown Rice", Quantity: 0.5, Measure: "cup", Calories: 110, Protein: 2.5, Carbs: 22, Fats: 1},
					{Label: "Mixed Vegetable Curry", Quantity: 1, Measure: "cup", Calories: 150, Protein: 6, Carbs: 15, Fats: 8},
				},
				domain.EveningSnack: {
					{Label: "Buttermilk", Quantity: 1, Measure: "glass", Calories: 70, Protein: 8, Carbs: 10, Fats: 2},
					{Label: "Roasted Chana", Quantity: 20, Measure: "g", Calories: 70, Protein: 4, Carbs: 8, Fats: 2},
				},
			},
		},
	}
}
