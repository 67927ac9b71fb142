package configs

import (
	"log"

	"github.com/bhagatankit05/Restuarant-App/entity"
)

// SeedMenu loads the sample menu once into an empty catalog.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{
			Name:        "Classic Margherita Pizza",
			Description: "Fresh mozzarella, tomato sauce, and basil on a crispy crust",
			Price:       14.99,
			Category:    entity.CategoryMains,
			ImageURL:    "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Caesar Salad",
			Description: "Crisp romaine lettuce with parmesan cheese and croutons",
			Price:       9.99,
			Category:    entity.CategorySalads,
			ImageURL:    "https://images.pexels.com/photos/1059905/pexels-photo-1059905.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon with lemon herb seasoning",
			Price:       22.99,
			Category:    entity.CategoryMains,
			ImageURL:    "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with molten center and vanilla ice cream",
			Price:       7.99,
			Category:    entity.CategoryDesserts,
			ImageURL:    "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Chicken Wings",
			Description: "Crispy buffalo wings served with celery and blue cheese",
			Price:       11.99,
			Category:    entity.CategoryAppetizers,
			ImageURL:    "https://images.pexels.com/photos/60616/fried-chicken-chicken-fried-crunchy-60616.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Fresh Orange Juice",
			Description: "Freshly squeezed orange juice",
			Price:       4.99,
			Category:    entity.CategoryBeverages,
			ImageURL:    "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Tomato Basil Soup",
			Description: "Creamy tomato soup with fresh basil and herbs",
			Price:       6.99,
			Category:    entity.CategorySoups,
			ImageURL:    "https://images.pexels.com/photos/539451/pexels-photo-539451.jpeg",
			IsAvailable: true,
		},
		{
			Name:        "Beef Burger",
			Description: "Juicy beef patty with lettuce, tomato, and special sauce",
			Price:       13.99,
			Category:    entity.CategoryMains,
			ImageURL:    "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
			IsAvailable: true,
		},
	}

	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("seeded %d menu items", len(items))
	return nil
}
