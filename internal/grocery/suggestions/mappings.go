package suggestions

var (
	weightManagementFoods = []Suggestion{
		{Name: "Leafy Greens", Reason: "Low-calorie and nutrient-dense for weight management"},
		{Name: "Lean Chicken", Reason: "High-quality protein with less fat"},
		{Name: "Quinoa", Reason: "Whole grain with protein and fiber for satiety"},
	}
	calorieDenseFoods = []Suggestion{
		{Name: "Nut Butter", Reason: "Calorie-dense source of healthy fats"},
		{Name: "Avocados", Reason: "Good source of healthy fats and calories"},
		{Name: "Protein Powder", Reason: "Convenient way to increase protein intake"},
	}
	balancedFoods = []Suggestion{
		{Name: "Mixed Berries", Reason: "Rich in antioxidants and vitamins"},
		{Name: "Greek Yogurt", Reason: "Good source of protein and probiotics"},
	}

	proteinFoods = []Suggestion{
		{Name: "Chicken Breast", Reason: "Excellent source of lean protein"},
		{Name: "Fish", Reason: "High-quality protein and healthy fats"},
	}
	complexCarbFoods = []Suggestion{
		{Name: "Sweet Potatoes", Reason: "Complex carbs for sustained energy"},
		{Name: "Oatmeal", Reason: "Healthy whole grain carbohydrates"},
	}
	healthyFatFoods = []Suggestion{
		{Name: "Nuts and Seeds", Reason: "Healthy fats and protein"},
		{Name: "Olive Oil", Reason: "Heart-healthy monounsaturated fats"},
	}

	recoveryFoods = []Suggestion{
		{Name: "Bananas", Reason: "Quick energy source with potassium for muscle function"},
		{Name: "Sports Drinks", Reason: "Replenishes electrolytes during intense activity"},
	}

	vegetarianFoods = []Suggestion{
		{Name: "Tofu", Reason: "Plant-based protein source"},
		{Name: "Lentils", Reason: "Rich in protein and fiber"},
	}
	veganFoods = []Suggestion{
		{Name: "Plant-Based Milk", Reason: "Good source of calcium and vitamins"},
		{Name: "Tempeh", Reason: "Fermented plant protein"},
	}

	muscleGainFoods = []Suggestion{
		{Name: "Eggs", Reason: "Complete protein for muscle recovery"},
		{Name: "Brown Rice", Reason: "Complex carbs for energy"},
	}
	weightLossFoods = []Suggestion{
		{Name: "Cauliflower", Reason: "Low-calorie vegetable substitute"},
		{Name: "Cottage Cheese", Reason: "High protein, low calorie dairy option"},
	}

	generalFoods = []Suggestion{
		{Name: "Spinach", Reason: "Rich in iron and vitamins"},
		{Name: "Blueberries", Reason: "High in antioxidants"},
		{Name: "Walnuts", Reason: "Brain-boosting healthy fats"},
		{Name: "Green Tea", Reason: "Antioxidants and metabolism support"},
		{Name: "Ginger", Reason: "Natural anti-inflammatory properties"},
	}
)

// Names removed by the dietary restriction filters.
var (
	VegetarianExclusions = []string{"Chicken Breast", "Fish"}
	VeganExclusions      = []string{"Chicken Breast", "Fish", "Greek Yogurt"}
)

// Category catalogs for the generic suggest endpoint. Fruits and vegetables
// double as the reserve for the health generator's minimum fill.
var (
	fruitCatalog     = []string{"Apples", "Bananas", "Oranges", "Strawberries", "Blueberries", "Grapes", "Kiwi", "Pineapple", "Watermelon", "Peaches"}
	vegetableCatalog = []string{"Spinach", "Broccoli", "Carrots", "Bell Peppers", "Tomatoes", "Cucumbers", "Zucchini", "Sweet Potatoes", "Avocados", "Kale"}
	proteinCatalog   = []string{"Chicken Breast", "Ground Turkey", "Salmon", "Eggs", "Tofu", "Greek Yogurt", "Cottage Cheese", "Black Beans", "Lentils", "Quinoa"}
	dairyCatalog     = []string{"Milk", "Cheese", "Yogurt", "Butter", "Sour Cream", "Cream Cheese", "Almond Milk", "Oat Milk", "Coconut Milk"}
	grainCatalog     = []string{"Brown Rice", "Whole Wheat Pasta", "Oats", "Bread", "Tortillas", "Cereal", "Quinoa", "Barley", "Bulgur"}
	snackCatalog     = []string{"Almonds", "Walnuts", "Hummus", "Crackers", "Popcorn", "Dark Chocolate", "Granola Bars", "Rice Cakes", "Trail Mix"}

	plantBasedCatalog  = []string{"Nutritional Yeast", "Tempeh", "Seitan", "Chia Seeds", "Flaxseeds", "Plant-based Protein Powder", "Cashews", "Hemp Seeds", "Coconut Yogurt"}
	ketoCatalog        = []string{"Avocado Oil", "Coconut Oil", "Bacon", "Heavy Cream", "Macadamia Nuts", "Pork Rinds", "Almond Flour", "Beef Jerky", "Full-fat Cream Cheese"}
	glutenFreeCatalog  = []string{"Gluten-free Bread", "Rice Pasta", "Gluten-free Flour", "Quinoa Pasta", "Corn Tortillas", "Gluten-free Oats", "Rice Cakes", "Buckwheat"}
	highProteinCatalog = []string{"Protein Powder", "Beef Jerky", "Tuna", "Protein Bars", "Peanut Butter", "Edamame", "Turkey Slices", "Cottage Cheese", "Hemp Seeds"}
)

const (
	fruitReason     = "Fresh fruit rich in vitamins and fiber"
	vegetableReason = "Nutrient-dense vegetable for everyday meals"
)

func reserveFoods() []Suggestion {
	out := make([]Suggestion, 0, len(fruitCatalog)+len(vegetableCatalog))
	for _, name := range fruitCatalog {
		out = append(out, Suggestion{Name: name, Reason: fruitReason})
	}
	for _, name := range vegetableCatalog {
		out = append(out, Suggestion{Name: name, Reason: vegetableReason})
	}
	return out
}
