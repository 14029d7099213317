package recipe

// Samples returns the starter dinners inserted into an empty store.
func Samples() []Recipe {
	return []Recipe{
		{
			Name:              "Fish and Chips",
			Ingredients:       []string{"4 fish fillets (600g)", "800g potatoes", "oil for frying", "100g flour", "beer batter"},
			Instructions:      "Cut potatoes, fry until golden. Batter fish, fry until crispy. Serve with mushy peas.",
			PrepTime:          15,
			CookTime:          25,
			Servings:          4,
			MealType:          MealTypeDinner,
			DietaryTags:       []string{TagKidFriendly, TagComfort},
			WeatherPreference: WeatherCold,
			ProteinType:       ProteinFish,
		},
		{
			Name:              "Chicken Stir Fry",
			Ingredients:       []string{"500g chicken breasts", "300g mixed vegetables", "30ml soy sauce", "10g ginger", "3 garlic cloves", "200g rice"},
			Instructions:      "Cut chicken, stir fry with vegetables. Season with soy sauce, ginger, garlic. Serve over rice.",
			PrepTime:          10,
			CookTime:          15,
			Servings:          4,
			MealType:          MealTypeDinner,
			DietaryTags:       []string{TagQuick, TagHealthy},
			WeatherPreference: WeatherAny,
			ProteinType:       ProteinMeat,
		},
		{
			Name:              "Vegetable Pasta",
			Ingredients:       []string{"300g pasta", "1 zucchini", "2 bell peppers", "400g tomatoes", "30ml olive oil", "fresh basil", "50g parmesan"},
			Instructions:      "Cook pasta. Saute vegetables in olive oil. Combine with pasta, add basil and parmesan.",
			PrepTime:          10,
			CookTime:          20,
			Servings:          4,
			MealType:          MealTypeDinner,
			DietaryTags:       []string{TagVegetarian, TagKidFriendly},
			WeatherPreference: WeatherAny,
			ProteinType:       ProteinVegetarian,
		},
		{
			Name:              "Salmon with Sweet Potato",
			Ingredients:       []string{"600g salmon fillets", "600g sweet potatoes", "300g broccoli", "30ml olive oil", "1 lemon"},
			Instructions:      "Roast sweet potatoes and broccoli. Pan fry salmon. Serve with lemon.",
			PrepTime:          10,
			CookTime:          25,
			Servings:          4,
			MealType:          MealTypeDinner,
			DietaryTags:       []string{TagHealthy, TagPescatarian},
			WeatherPreference: WeatherAny,
			ProteinType:       ProteinFish,
		},
		{
			Name:              "Chicken Soup",
			Ingredients:       []string{"800g chicken thighs", "200g carrots", "150g celery", "1 onion", "1.5L chicken stock", "150g noodles"},
			Instructions:      "Simmer chicken with vegetables in stock. Add noodles in last 10 minutes.",
			PrepTime:          15,
			CookTime:          45,
			Servings:          6,
			MealType:          MealTypeDinner,
			DietaryTags:       []string{TagComfort, TagHealthy},
			WeatherPreference: WeatherCold,
			ProteinType:       ProteinMeat,
		},
	}
}
