package foodapi

import "github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"

// StaticFoods returns the bundled food list used when the lookup backend is
// unreachable. Nutrients are per 100 g (per 100 ml for drinks).
func StaticFoods() []domain.FoodCandidate {
	return []domain.FoodCandidate{
		{ID: "indian-1", Label: "Basmati Rice, cooked", Nutrients: domain.NutrientsPer100g{EnergyKcal: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}, Measure: "100g"},
		{ID: "indian-2", Label: "Brown Rice, cooked", Nutrients: domain.NutrientsPer100g{EnergyKcal: 111, Protein: 2.6, Carbs: 23, Fat: 0.9}, Measure: "100g"},
		{ID: "indian-3", Label: "Roti/Chapati", Nutrients: domain.NutrientsPer100g{EnergyKcal: 264, Protein: 9, Carbs: 46, Fat: 4.2}, Measure: "100g"},
		{ID: "indian-4", Label: "Naan Bread", Nutrients: domain.NutrientsPer100g{EnergyKcal: 310, Protein: 8, Carbs: 52, Fat: 6.5}, Measure: "100g"},
		{ID: "indian-5", Label: "Paratha", Nutrients: domain.NutrientsPer100g{EnergyKcal: 326, Protein: 6.5, Carbs: 45, Fat: 12}, Measure: "100g"},
		{ID: "indian-6", Label: "Dosa", Nutrients: domain.NutrientsPer100g{EnergyKcal: 133, Protein: 4.2, Carbs: 24, Fat: 2.1}, Measure: "100g"},
		{ID: "indian-7", Label: "Idli", Nutrients: domain.NutrientsPer100g{EnergyKcal: 39, Protein: 2.2, Carbs: 7.5, Fat: 0.2}, Measure: "100g"},
		{ID: "indian-8", Label: "Upma", Nutrients: domain.NutrientsPer100g{EnergyKcal: 156, Protein: 4.8, Carbs: 28, Fat: 2.8}, Measure: "100g"},
		{ID: "indian-9", Label: "Dal (Lentils), cooked", Nutrients: domain.NutrientsPer100g{EnergyKcal: 116, Protein: 9, Carbs: 20, Fat: 0.4}, Measure: "100g"},
		{ID: "indian-10", Label: "Rajma (Kidney Beans)", Nutrients: domain.NutrientsPer100g{EnergyKcal: 127, Protein: 8.7, Carbs: 23, Fat: 0.5}, Measure: "100g"},
		{ID: "indian-11", Label: "Chana Dal", Nutrients: domain.NutrientsPer100g{EnergyKcal: 164, Protein: 8.9, Carbs: 27, Fat: 2.6}, Measure: "100g"},
		{ID: "indian-12", Label: "Moong Dal", Nutrients: domain.NutrientsPer100g{EnergyKcal: 105, Protein: 7.5, Carbs: 19, Fat: 0.4}, Measure: "100g"},
		{ID: "indian-13", Label: "Toor Dal", Nutrients: domain.NutrientsPer100g{EnergyKcal: 139, Protein: 7.8, Carbs: 25, Fat: 0.4}, Measure: "100g"},
		{ID: "indian-14", Label: "Chicken Curry", Nutrients: domain.NutrientsPer100g{EnergyKcal: 162, Protein: 18, Carbs: 8, Fat: 7.2}, Measure: "100g"},
		{ID: "indian-15", Label: "Butter Chicken", Nutrients: domain.NutrientsPer100g{EnergyKcal: 280, Protein: 16, Carbs: 12, Fat: 18}, Measure: "100g"},
		{ID: "indian-16", Label: "Paneer Tikka", Nutrients: domain.NutrientsPer100g{EnergyKcal: 265, Protein: 18, Carbs: 8, Fat: 18}, Measure: "100g"},
		{ID: "indian-17", Label: "Palak Paneer", Nutrients: domain.NutrientsPer100g{EnergyKcal: 142, Protein: 8.5, Carbs: 6, Fat: 10}, Measure: "100g"},
		{ID: "indian-18", Label: "Aloo Gobi", Nutrients: domain.NutrientsPer100g{EnergyKcal: 98, Protein: 3.2, Carbs: 16, Fat: 3.1}, Measure: "100g"},
		{ID: "indian-19", Label: "Baingan Bharta", Nutrients: domain.NutrientsPer100g{EnergyKcal: 76, Protein: 2.8, Carbs: 12, Fat: 2.1}, Measure: "100g"},
		{ID: "indian-20", Label: "Chana Masala", Nutrients: domain.NutrientsPer100g{EnergyKcal: 164, Protein: 8.9, Carbs: 27, Fat: 2.6}, Measure: "100g"},
		{ID: "indian-21", Label: "Dal Makhani", Nutrients: domain.NutrientsPer100g{EnergyKcal: 198, Protein: 9.2, Carbs: 28, Fat: 6.8}, Measure: "100g"},
		{ID: "indian-22", Label: "Fish Curry", Nutrients: domain.NutrientsPer100g{EnergyKcal: 145, Protein: 20, Carbs: 6, Fat: 5.2}, Measure: "100g"},
		{ID: "indian-23", Label: "Mutton Curry", Nutrients: domain.NutrientsPer100g{EnergyKcal: 185, Protein: 22, Carbs: 8, Fat: 8.5}, Measure: "100g"},
		{ID: "indian-26", Label: "Samosa", Nutrients: domain.NutrientsPer100g{EnergyKcal: 262, Protein: 6.5, Carbs: 32, Fat: 12}, Measure: "100g"},
		{ID: "indian-29", Label: "Gulab Jamun", Nutrients: domain.NutrientsPer100g{EnergyKcal: 320, Protein: 4.2, Carbs: 52, Fat: 10}, Measure: "100g"},
		{ID: "indian-34", Label: "Masala Chai", Nutrients: domain.NutrientsPer100g{EnergyKcal: 45, Protein: 1.2, Carbs: 8.5, Fat: 1.1}, Measure: "100ml"},
		{ID: "indian-35", Label: "Lassi", Nutrients: domain.NutrientsPer100g{EnergyKcal: 98, Protein: 3.2, Carbs: 12, Fat: 4.1}, Measure: "100ml"},
		{ID: "indian-36", Label: "Buttermilk", Nutrients: domain.NutrientsPer100g{EnergyKcal: 35, Protein: 3.5, Carbs: 4.8, Fat: 0.9}, Measure: "100ml"},
		{ID: "indian-45", Label: "Biryani", Nutrients: domain.NutrientsPer100g{EnergyKcal: 285, Protein: 12, Carbs: 42, Fat: 8.5}, Measure: "100g"},
		{ID: "indian-46", Label: "Pulao", Nutrients: domain.NutrientsPer100g{EnergyKcal: 198, Protein: 4.8, Carbs: 36, Fat: 3.2}, Measure: "100g"},
		{ID: "indian-47", Label: "Khichdi", Nutrients: domain.NutrientsPer100g{EnergyKcal: 156, Protein: 6.8, Carbs: 28, Fat: 2.1}, Measure: "100g"},
	}
}
