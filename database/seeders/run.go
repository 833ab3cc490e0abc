// Package seeders fills an empty database with starter data for local
// development. Invoked through the `db:seed` CLI command.
package seeders

import (
	"context"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
)

var catalog = []models.Food{
	{Name: "Greek Salad", Description: "Fresh vegetables tossed with feta and olives", Price: 120, Category: "Salad", Image: "greek_salad.png"},
	{Name: "Veg Salad", Description: "Seasonal greens with a light vinaigrette", Price: 180, Category: "Salad", Image: "veg_salad.png"},
	{Name: "Chicken Rolls", Description: "Spiced chicken wrapped in a soft paratha", Price: 200, Category: "Rolls", Image: "chicken_rolls.png"},
	{Name: "Veg Rolls", Description: "Stir-fried vegetables in a crisp wrap", Price: 150, Category: "Rolls", Image: "veg_rolls.png"},
	{Name: "Ripple Ice Cream", Description: "Vanilla ice cream with raspberry ripple", Price: 140, Category: "Deserts", Image: "ripple_ice_cream.png"},
	{Name: "Fruit Ice Cream", Description: "Mixed fruit ice cream sundae", Price: 220, Category: "Deserts", Image: "fruit_ice_cream.png"},
	{Name: "Chicken Sandwich", Description: "Grilled chicken with lettuce and mayo", Price: 120, Category: "Sandwich", Image: "chicken_sandwich.png"},
	{Name: "Vegan Sandwich", Description: "Roasted vegetables with hummus", Price: 190, Category: "Sandwich", Image: "vegan_sandwich.png"},
	{Name: "Cup Cake", Description: "Frosted vanilla cup cake", Price: 100, Category: "Cake", Image: "cup_cake.png"},
	{Name: "Butterscotch Cake", Description: "Layered butterscotch cream cake", Price: 250, Category: "Cake", Image: "butterscotch_cake.png"},
	{Name: "Garlic Mushroom", Description: "Button mushrooms in garlic butter", Price: 140, Category: "Pure Veg", Image: "garlic_mushroom.png"},
	{Name: "Fried Cauliflower", Description: "Crispy cauliflower florets", Price: 220, Category: "Pure Veg", Image: "fried_cauliflower.png"},
	{Name: "Cheese Pasta", Description: "Penne in a three-cheese sauce", Price: 180, Category: "Pasta", Image: "cheese_pasta.png"},
	{Name: "Tomato Pasta", Description: "Penne in a slow-cooked tomato sauce", Price: 160, Category: "Pasta", Image: "tomato_pasta.png"},
	{Name: "Butter Noodles", Description: "Egg noodles tossed in herb butter", Price: 140, Category: "Noodles", Image: "butter_noodles.png"},
	{Name: "Veg Noodles", Description: "Hakka noodles with stir-fried vegetables", Price: 120, Category: "Noodles", Image: "veg_noodles.png"},
}

// Run inserts the starter catalog when the foods collection is empty.
// Safe to run repeatedly.
func Run(ctx context.Context) error {
	foods := repositories.NewFoodRepository()

	n, err := foods.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("catalog already seeded", "count", n)
		return nil
	}

	for i := range catalog {
		f := catalog[i]
		if err := foods.Create(ctx, &f); err != nil {
			return err
		}
	}

	logger.Info("catalog seeded", "count", len(catalog))
	return nil
}
