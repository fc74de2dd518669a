package catalog

import (
	"sync"

	"github.com/cognicore/nutri/pkg/nutri/nutrition"
)

// Default returns the built-in USDA-derived catalog. The same instance is
// returned on every call.
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(builtinFoods)
	if err != nil {
		panic("catalog: invalid built-in foods: " + err.Error())
	}
	return c
})

type facts = nutrition.Facts

var builtinFoods = []FoodItem{
	// Proteins
	{
		ID: "chicken-breast", Name: "Chicken Breast",
		Aliases:              []string{"chicken", "boneless chicken", "skinless chicken breast", "chicken breasts"},
		ReferenceDescription: "100g", ReferenceGrams: 100,
		Nutrition: facts{Calories: 165, Fat: 3.6, SaturatedFat: 1, Protein: 31, Sodium: 74, Cholesterol: 85},
	},
	{
		ID: "ground-beef", Name: "Ground Beef (80/20)",
		Aliases:              []string{"ground beef", "beef", "hamburger", "minced beef", "beef mince"},
		ReferenceDescription: "100g", ReferenceGrams: 100,
		Nutrition: facts{Calories: 254, Fat: 17, SaturatedFat: 6.8, Protein: 26, Sodium: 75, Cholesterol: 78},
	},
	{
		ID: "salmon", Name: "Salmon",
		Aliases:              []string{"salmon fillet", "atlantic salmon", "salmon filet"},
		ReferenceDescription: "100g", ReferenceGrams: 100,
		Nutrition: facts{Calories: 208, Fat: 12, SaturatedFat: 2.5, Protein: 20, Sodium: 59, Cholesterol: 55},
	},
	{
		ID: "eggs", Name: "Eggs",
		Aliases:              []string{"egg", "large egg", "whole egg", "eggs large"},
		ReferenceDescription: "1 large (50g)", ReferenceGrams: 50,
		Nutrition: facts{Calories: 72, Fat: 5, SaturatedFat: 1.6, Carbohydrates: 0.4, Sugar: 0.2, Protein: 6.3, Sodium: 71, Cholesterol: 186},
	},
	{
		ID: "bacon", Name: "Bacon",
		Aliases:              []string{"bacon strips", "pork bacon", "streaky bacon"},
		ReferenceDescription: "2 slices (16g)", ReferenceGrams: 16,
		Nutrition: facts{Calories: 86, Fat: 7, SaturatedFat: 2.3, Carbohydrates: 0.2, Protein: 5.5, Sodium: 280, Cholesterol: 18},
	},
	{
		ID: "tofu", Name: "Tofu (Firm)",
		Aliases:              []string{"tofu", "firm tofu", "bean curd"},
		ReferenceDescription: "100g", ReferenceGrams: 100,
		Nutrition: facts{Calories: 144, Fat: 8.7, SaturatedFat: 1.3, Carbohydrates: 2.8, Fiber: 1.9, Sugar: 0.6, Protein: 15.8, Sodium: 14},
	},

	// Dairy
	{
		ID: "butter", Name: "Butter",
		Aliases:              []string{"unsalted butter", "salted butter"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 102, Fat: 11.5, SaturatedFat: 7.3, Protein: 0.1, Sodium: 2, Cholesterol: 31},
	},
	{
		ID: "milk-whole", Name: "Whole Milk",
		Aliases:              []string{"milk", "whole milk", "regular milk"},
		ReferenceDescription: "1 cup (244ml)", ReferenceGrams: 244,
		Nutrition: facts{Calories: 149, Fat: 8, SaturatedFat: 4.6, Carbohydrates: 12, Sugar: 12, Protein: 8, Sodium: 105, Cholesterol: 24},
	},
	{
		ID: "cheese-cheddar", Name: "Cheddar Cheese",
		Aliases:              []string{"cheddar", "cheese", "cheddar cheese", "sharp cheddar"},
		ReferenceDescription: "1 oz (28g)", ReferenceGrams: 28,
		Nutrition: facts{Calories: 113, Fat: 9.3, SaturatedFat: 5.9, Carbohydrates: 0.4, Sugar: 0.1, Protein: 7, Sodium: 174, Cholesterol: 28},
	},
	{
		ID: "cream-cheese", Name: "Cream Cheese",
		Aliases:              []string{"cream cheese", "philadelphia"},
		ReferenceDescription: "2 tbsp (28g)", ReferenceGrams: 28,
		Nutrition: facts{Calories: 99, Fat: 9.9, SaturatedFat: 5.6, Carbohydrates: 1.6, Sugar: 0.9, Protein: 1.7, Sodium: 85, Cholesterol: 31},
	},
	{
		ID: "greek-yogurt", Name: "Greek Yogurt",
		Aliases:              []string{"greek yogurt", "plain greek yogurt", "yogurt"},
		ReferenceDescription: "1 cup (245g)", ReferenceGrams: 245,
		Nutrition: facts{Calories: 146, Fat: 3.8, SaturatedFat: 2.5, Carbohydrates: 7.8, Sugar: 7, Protein: 20, Sodium: 68, Cholesterol: 13},
	},
	{
		ID: "heavy-cream", Name: "Heavy Cream",
		Aliases:              []string{"heavy cream", "whipping cream", "heavy whipping cream"},
		ReferenceDescription: "1 tbsp (15ml)", ReferenceGrams: 15,
		Nutrition: facts{Calories: 52, Fat: 5.6, SaturatedFat: 3.5, Carbohydrates: 0.4, Sugar: 0.4, Protein: 0.3, Sodium: 6, Cholesterol: 17},
	},

	// Grains & carbs
	{
		ID: "rice-white", Name: "White Rice (cooked)",
		Aliases:              []string{"rice", "white rice", "cooked rice", "steamed rice"},
		ReferenceDescription: "1 cup (158g)", ReferenceGrams: 158,
		Nutrition: facts{Calories: 206, Fat: 0.4, SaturatedFat: 0.1, Carbohydrates: 45, Fiber: 0.6, Protein: 4.3, Sodium: 2},
	},
	{
		ID: "pasta", Name: "Pasta (cooked)",
		Aliases:              []string{"pasta", "spaghetti", "penne", "linguine", "fettuccine", "noodles"},
		ReferenceDescription: "1 cup (140g)", ReferenceGrams: 140,
		Nutrition: facts{Calories: 220, Fat: 1.3, SaturatedFat: 0.2, Carbohydrates: 43, Fiber: 2.5, Sugar: 0.8, Protein: 8.1, Sodium: 1},
	},
	{
		ID: "bread-white", Name: "White Bread",
		Aliases:              []string{"bread", "white bread", "sandwich bread", "slice bread"},
		ReferenceDescription: "1 slice (25g)", ReferenceGrams: 25,
		Nutrition: facts{Calories: 66, Fat: 0.9, SaturatedFat: 0.2, Carbohydrates: 12.7, Fiber: 0.6, Sugar: 1.4, Protein: 2.3, Sodium: 130},
	},
	{
		ID: "flour-ap", Name: "All-Purpose Flour",
		Aliases:              []string{"flour", "all purpose flour", "ap flour", "white flour"},
		ReferenceDescription: "1 cup (125g)", ReferenceGrams: 125,
		Nutrition: facts{Calories: 455, Fat: 1.2, SaturatedFat: 0.2, Carbohydrates: 95, Fiber: 3.4, Sugar: 0.3, Protein: 12.9, Sodium: 3},
	},
	{
		ID: "oats", Name: "Oats (dry)",
		Aliases:              []string{"oats", "rolled oats", "oatmeal", "old fashioned oats"},
		ReferenceDescription: "1/2 cup (40g)", ReferenceGrams: 40,
		Nutrition: facts{Calories: 153, Fat: 2.6, SaturatedFat: 0.4, Carbohydrates: 27, Fiber: 4, Sugar: 0.4, Protein: 5.3, Sodium: 2},
	},

	// Vegetables
	{
		ID: "broccoli", Name: "Broccoli",
		Aliases:              []string{"broccoli", "broccoli florets"},
		ReferenceDescription: "1 cup (91g)", ReferenceGrams: 91,
		Nutrition: facts{Calories: 31, Fat: 0.3, Carbohydrates: 6, Fiber: 2.4, Sugar: 1.5, Protein: 2.5, Sodium: 30},
	},
	{
		ID: "spinach", Name: "Spinach",
		Aliases:              []string{"spinach", "baby spinach", "fresh spinach"},
		ReferenceDescription: "1 cup (30g)", ReferenceGrams: 30,
		Nutrition: facts{Calories: 7, Fat: 0.1, Carbohydrates: 1.1, Fiber: 0.7, Sugar: 0.1, Protein: 0.9, Sodium: 24},
	},
	{
		ID: "onion", Name: "Onion",
		Aliases:              []string{"onion", "yellow onion", "white onion", "red onion", "onions"},
		ReferenceDescription: "1 medium (110g)", ReferenceGrams: 110,
		Nutrition: facts{Calories: 44, Fat: 0.1, Carbohydrates: 10, Fiber: 1.9, Sugar: 4.7, Protein: 1.2, Sodium: 4},
	},
	{
		ID: "garlic", Name: "Garlic",
		Aliases:              []string{"garlic", "garlic cloves", "cloves garlic", "minced garlic"},
		ReferenceDescription: "1 clove (3g)", ReferenceGrams: 3,
		Nutrition: facts{Calories: 4, Carbohydrates: 1, Fiber: 0.1, Protein: 0.2, Sodium: 1},
	},
	{
		ID: "tomato", Name: "Tomato",
		Aliases:              []string{"tomato", "tomatoes", "roma tomato", "cherry tomatoes"},
		ReferenceDescription: "1 medium (123g)", ReferenceGrams: 123,
		Nutrition: facts{Calories: 22, Fat: 0.2, Carbohydrates: 4.8, Fiber: 1.5, Sugar: 3.2, Protein: 1.1, Sodium: 6},
	},
	{
		ID: "potato", Name: "Potato",
		Aliases:              []string{"potato", "potatoes", "russet potato", "yukon gold"},
		ReferenceDescription: "1 medium (150g)", ReferenceGrams: 150,
		Nutrition: facts{Calories: 110, Fat: 0.1, Carbohydrates: 26, Fiber: 2.4, Sugar: 1.2, Protein: 3, Sodium: 8},
	},
	{
		ID: "carrot", Name: "Carrot",
		Aliases:              []string{"carrot", "carrots"},
		ReferenceDescription: "1 medium (61g)", ReferenceGrams: 61,
		Nutrition: facts{Calories: 25, Fat: 0.1, Carbohydrates: 6, Fiber: 1.7, Sugar: 2.9, Protein: 0.6, Sodium: 42},
	},
	{
		ID: "bell-pepper", Name: "Bell Pepper",
		Aliases:              []string{"bell pepper", "red pepper", "green pepper", "sweet pepper", "peppers"},
		ReferenceDescription: "1 medium (119g)", ReferenceGrams: 119,
		Nutrition: facts{Calories: 31, Fat: 0.3, Carbohydrates: 6, Fiber: 2.1, Sugar: 4.2, Protein: 1, Sodium: 4},
	},

	// Fruits
	{
		ID: "banana", Name: "Banana",
		Aliases:              []string{"banana", "bananas"},
		ReferenceDescription: "1 medium (118g)", ReferenceGrams: 118,
		Nutrition: facts{Calories: 105, Fat: 0.4, SaturatedFat: 0.1, Carbohydrates: 27, Fiber: 3.1, Sugar: 14, Protein: 1.3, Sodium: 1},
	},
	{
		ID: "apple", Name: "Apple",
		Aliases:              []string{"apple", "apples"},
		ReferenceDescription: "1 medium (182g)", ReferenceGrams: 182,
		Nutrition: facts{Calories: 95, Fat: 0.3, Carbohydrates: 25, Fiber: 4.4, Sugar: 19, Protein: 0.5, Sodium: 2},
	},
	{
		ID: "lemon", Name: "Lemon",
		Aliases:              []string{"lemon", "lemon juice", "lemons"},
		ReferenceDescription: "1 medium (58g)", ReferenceGrams: 58,
		Nutrition: facts{Calories: 17, Fat: 0.2, Carbohydrates: 5.4, Fiber: 1.6, Sugar: 1.5, Protein: 0.6, Sodium: 1},
	},

	// Oils & fats
	{
		ID: "olive-oil", Name: "Olive Oil",
		Aliases:              []string{"olive oil", "evoo", "extra virgin olive oil"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 119, Fat: 13.5, SaturatedFat: 1.9},
	},
	{
		ID: "vegetable-oil", Name: "Vegetable Oil",
		Aliases:              []string{"vegetable oil", "canola oil", "cooking oil", "oil"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 124, Fat: 14, SaturatedFat: 1.1},
	},
	{
		ID: "coconut-oil", Name: "Coconut Oil",
		Aliases:              []string{"coconut oil"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 121, Fat: 13.5, SaturatedFat: 11.2},
	},

	// Sweeteners
	{
		ID: "sugar", Name: "Sugar",
		Aliases:              []string{"sugar", "white sugar", "granulated sugar", "cane sugar"},
		ReferenceDescription: "1 tbsp (12.5g)", ReferenceGrams: 12.5,
		Nutrition: facts{Calories: 48, Carbohydrates: 12.5, Sugar: 12.5},
	},
	{
		ID: "honey", Name: "Honey",
		Aliases:              []string{"honey"},
		ReferenceDescription: "1 tbsp (21g)", ReferenceGrams: 21,
		Nutrition: facts{Calories: 64, Carbohydrates: 17, Sugar: 17, Protein: 0.1, Sodium: 1},
	},
	{
		ID: "brown-sugar", Name: "Brown Sugar",
		Aliases:              []string{"brown sugar", "light brown sugar", "dark brown sugar"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 52, Carbohydrates: 13.5, Sugar: 13.4, Sodium: 4},
	},

	// Nuts & seeds
	{
		ID: "almonds", Name: "Almonds",
		Aliases:              []string{"almonds", "sliced almonds", "almond"},
		ReferenceDescription: "1 oz (28g)", ReferenceGrams: 28,
		Nutrition: facts{Calories: 164, Fat: 14, SaturatedFat: 1.1, Carbohydrates: 6, Fiber: 3.5, Sugar: 1.2, Protein: 6},
	},
	{
		ID: "walnuts", Name: "Walnuts",
		Aliases:              []string{"walnuts", "walnut"},
		ReferenceDescription: "1 oz (28g)", ReferenceGrams: 28,
		Nutrition: facts{Calories: 185, Fat: 18.5, SaturatedFat: 1.7, Carbohydrates: 3.9, Fiber: 1.9, Sugar: 0.7, Protein: 4.3, Sodium: 1},
	},

	// Condiments & sauces
	{
		ID: "soy-sauce", Name: "Soy Sauce",
		Aliases:              []string{"soy sauce", "shoyu"},
		ReferenceDescription: "1 tbsp (16g)", ReferenceGrams: 16,
		Nutrition: facts{Calories: 9, Carbohydrates: 0.8, Fiber: 0.1, Sugar: 0.1, Protein: 1.3, Sodium: 879},
	},
	{
		ID: "mayo", Name: "Mayonnaise",
		Aliases:              []string{"mayo", "mayonnaise"},
		ReferenceDescription: "1 tbsp (14g)", ReferenceGrams: 14,
		Nutrition: facts{Calories: 94, Fat: 10, SaturatedFat: 1.6, Carbohydrates: 0.1, Sugar: 0.1, Protein: 0.1, Sodium: 88, Cholesterol: 6},
	},
	{
		ID: "ketchup", Name: "Ketchup",
		Aliases:              []string{"ketchup", "catsup", "tomato ketchup"},
		ReferenceDescription: "1 tbsp (17g)", ReferenceGrams: 17,
		Nutrition: facts{Calories: 19, Carbohydrates: 4.8, Sugar: 3.7, Protein: 0.2, Sodium: 154},
	},
	{
		ID: "mustard", Name: "Mustard",
		Aliases:              []string{"mustard", "yellow mustard", "dijon mustard"},
		ReferenceDescription: "1 tsp (5g)", ReferenceGrams: 5,
		Nutrition: facts{Calories: 3, Fat: 0.2, Carbohydrates: 0.3, Fiber: 0.1, Sugar: 0.1, Protein: 0.2, Sodium: 56},
	},
}
