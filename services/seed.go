package services

import "github.com/THORzero9/FWR-sub000/models"

// SampleRecipes is the recipe collection seeded on first boot. Ratings are
// stored as tenths (45 = 4.5 stars).
func SampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:         "Tomato Basil Pasta",
			Description:  "Quick weeknight pasta with fresh tomatoes.",
			PrepTimeMins: 25,
			ImageURL:     "/images/recipes/tomato-basil-pasta.jpg",
			Ingredients:  models.IngredientList{"Spaghetti", "Tomatoes", "Basil", "Garlic", "Olive Oil"},
			Instructions: "Cook the spaghetti. Saute garlic in olive oil, add chopped tomatoes and simmer. Toss with pasta and torn basil.",
			Rating:       45,
		},
		{
			Name:         "Vegetable Stir Fry",
			Description:  "Use up whatever vegetables are about to turn.",
			PrepTimeMins: 15,
			ImageURL:     "/images/recipes/vegetable-stir-fry.jpg",
			Ingredients:  models.IngredientList{"Broccoli", "Carrots", "Bell Pepper", "Soy Sauce", "Ginger"},
			Instructions: "Slice the vegetables thin. Stir fry on high heat with ginger, finish with soy sauce.",
			Rating:       41,
		},
		{
			Name:         "Banana Bread",
			Description:  "The classic rescue for overripe bananas.",
			PrepTimeMins: 70,
			ImageURL:     "/images/recipes/banana-bread.jpg",
			Ingredients:  models.IngredientList{"Bananas", "Flour", "Eggs", "Butter", "Sugar"},
			Instructions: "Mash the bananas, mix in melted butter, eggs, sugar and flour. Bake at 175C for an hour.",
			Rating:       48,
		},
		{
			Name:         "Creamy Tomato Soup",
			Description:  "Silky soup from tinned or fresh tomatoes.",
			PrepTimeMins: 35,
			ImageURL:     "/images/recipes/creamy-tomato-soup.jpg",
			Ingredients:  models.IngredientList{"Tomato Sauce", "Onion", "Cream", "Vegetable Stock", "Butter"},
			Instructions: "Soften the onion in butter, add tomato sauce and stock, simmer, then blend with cream.",
			Rating:       39,
		},
		{
			Name:         "Cheese Omelette",
			Description:  "Two eggs, a handful of cheese, three minutes.",
			PrepTimeMins: 10,
			ImageURL:     "/images/recipes/cheese-omelette.jpg",
			Ingredients:  models.IngredientList{"Eggs", "Cheddar Cheese", "Milk", "Butter", "Chives"},
			Instructions: "Whisk the eggs with a splash of milk. Cook gently in butter, fold over grated cheddar, top with chives.",
			Rating:       42,
		},
		{
			Name:         "Chicken Fried Rice",
			Description:  "Yesterday's rice is the best rice.",
			PrepTimeMins: 20,
			ImageURL:     "/images/recipes/chicken-fried-rice.jpg",
			Ingredients:  models.IngredientList{"Cooked Rice", "Chicken Breast", "Eggs", "Peas", "Spring Onion", "Soy Sauce"},
			Instructions: "Fry diced chicken, push aside and scramble the eggs. Add rice, peas and soy sauce, toss until hot.",
			Rating:       44,
		},
	}
}

// SampleFoodBanks seeds the donation page. Distances are miles scaled by 10.
func SampleFoodBanks() []models.FoodBank {
	return []models.FoodBank{
		{Name: "Community Food Share", Address: "12 Market Street", Phone: "555-0142", Hours: "Mon-Fri 9am-5pm", DistanceTenths: 8},
		{Name: "Hopewell Pantry", Address: "471 Elm Avenue", Phone: "555-0188", Hours: "Tue & Thu 10am-6pm", DistanceTenths: 23},
		{Name: "St. Mary's Kitchen", Address: "89 Chapel Road", Phone: "555-0109", Hours: "Daily 11am-2pm", DistanceTenths: 37},
		{Name: "Northside Food Bank", Address: "230 Industrial Way", Phone: "555-0174", Hours: "Sat 8am-12pm", DistanceTenths: 52},
	}
}

// SampleNearbyUsers seeds the sharing page.
func SampleNearbyUsers() []models.NearbyUser {
	return []models.NearbyUser{
		{Name: "Priya", AvatarURL: "/images/avatars/priya.png", DistanceTenths: 3},
		{Name: "Marcus", AvatarURL: "/images/avatars/marcus.png", DistanceTenths: 11},
		{Name: "Elena", AvatarURL: "/images/avatars/elena.png", DistanceTenths: 19},
		{Name: "Tom", AvatarURL: "/images/avatars/tom.png", DistanceTenths: 28},
	}
}
