package store

import "github.com/elegante-tailoring/storefront-api/models"

// seedCatalog returns the default fabric collection the store boots with
// when no persisted state exists.
func seedCatalog() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Premium Shirt Fabric",
			Price:    899,
			Image:    "/assets/fabric-collection.jpg",
			Category: "Shirt",
			Gender:   models.GenderMen,
			Sizes:    []string{"2m", "2.5m", "3m", "3.5m", "4m"},
			Stock:    map[string]int{"2m": 50, "2.5m": 45, "3m": 40, "3.5m": 35, "4m": 30},
			Rating:   4.9, ReviewCount: 234,
			Colors: []models.ProductColor{
				{Name: "White Cotton", Value: "#FFFFFF", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Sky Blue", Value: "#87CEEB", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Light Pink", Value: "#FFB6C1", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (36-38)", Meters: 2, Description: "Small size chest 36-38 inches"},
				{Size: "M (39-41)", Meters: 2.5, Description: "Medium size chest 39-41 inches"},
				{Size: "L (42-44)", Meters: 3, Description: "Large size chest 42-44 inches"},
				{Size: "XL (45-47)", Meters: 3.5, Description: "Extra Large chest 45-47 inches"},
				{Size: "XXL (48-50)", Meters: 4, Description: "Double XL chest 48-50 inches"},
			},
			Description:  "Premium cotton fabric perfect for custom tailored shirts. Breathable and comfortable.",
			UseCases:     []string{"Formal shirts", "Casual shirts", "Business wear", "Custom tailoring"},
			IsNewArrival: true,
			Featured:     true,
		},
		{
			ID:       "2",
			Name:     "Luxury Pant Fabric",
			Price:    1299,
			Image:    "/assets/fabric-collection.jpg",
			Category: "Pant",
			Gender:   models.GenderMen,
			Sizes:    []string{"2m", "2.5m", "3m", "3.5m"},
			Stock:    map[string]int{"2m": 40, "2.5m": 50, "3m": 45, "3.5m": 35},
			Rating:   4.8, ReviewCount: 189,
			Colors: []models.ProductColor{
				{Name: "Charcoal Gray", Value: "#36454F", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Navy Blue", Value: "#000080", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Black", Value: "#000000", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (28-30)", Meters: 2, Description: "Small waist 28-30 inches"},
				{Size: "M (32-34)", Meters: 2.5, Description: "Medium waist 32-34 inches"},
				{Size: "L (36-38)", Meters: 3, Description: "Large waist 36-38 inches"},
				{Size: "XL (40-42)", Meters: 3.5, Description: "Extra Large waist 40-42 inches"},
			},
			Description: "High-quality wool blend fabric for elegant tailored pants. Durable and wrinkle-resistant.",
			UseCases:    []string{"Formal pants", "Business trousers", "Dress pants", "Professional wear"},
			Featured:    true,
		},
		{
			ID:            "3",
			Name:          "Traditional Kurta Fabric",
			Price:         1599,
			OriginalPrice: 1999,
			Image:         "/assets/fabric-collection.jpg",
			Category:      "Kurta",
			Gender:        models.GenderMen,
			Sizes:         []string{"3m", "3.5m", "4m", "4.5m"},
			Stock:         map[string]int{"3m": 60, "3.5m": 55, "4m": 50, "4.5m": 40},
			Rating:        4.7, ReviewCount: 156,
			Colors: []models.ProductColor{
				{Name: "Cream White", Value: "#FFFDD0", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Golden Beige", Value: "#D4AF37", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Royal Blue", Value: "#4169E1", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (36-38)", Meters: 3, Description: "Small size chest 36-38 inches"},
				{Size: "M (39-41)", Meters: 3.5, Description: "Medium size chest 39-41 inches"},
				{Size: "L (42-44)", Meters: 4, Description: "Large size chest 42-44 inches"},
				{Size: "XL (45-47)", Meters: 4.5, Description: "Extra Large chest 45-47 inches"},
			},
			Description:  "Finest cotton and silk blend for traditional kurtas. Perfect for festive occasions.",
			UseCases:     []string{"Festival wear", "Wedding functions", "Traditional events", "Ethnic wear"},
			IsNewArrival: true,
			Featured:     true,
		},
		{
			ID:       "4",
			Name:     "Comfortable Pajama Fabric",
			Price:    699,
			Image:    "/assets/fabric-collection.jpg",
			Category: "Pajama",
			Gender:   models.GenderMen,
			Sizes:    []string{"2m", "2.5m", "3m"},
			Stock:    map[string]int{"2m": 70, "2.5m": 65, "3m": 55},
			Rating:   4.6, ReviewCount: 142,
			Colors: []models.ProductColor{
				{Name: "White", Value: "#FFFFFF", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Cream", Value: "#FFFDD0", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Light Gray", Value: "#D3D3D3", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (28-30)", Meters: 2, Description: "Small waist 28-30 inches"},
				{Size: "M (32-34)", Meters: 2.5, Description: "Medium waist 32-34 inches"},
				{Size: "L (36-40)", Meters: 3, Description: "Large waist 36-40 inches"},
			},
			Description: "Soft and breathable cotton fabric ideal for traditional pajamas. Maximum comfort.",
			UseCases:    []string{"Traditional wear", "Festive occasions", "Casual wear", "Ethnic ensembles"},
			Featured:    true,
		},
		{
			ID:            "5",
			Name:          "Premium Suit Fabric",
			Price:         2499,
			OriginalPrice: 2999,
			Image:         "/assets/fabric-collection.jpg",
			Category:      "Suit",
			Gender:        models.GenderMen,
			Sizes:         []string{"5m", "5.5m", "6m", "6.5m"},
			Stock:         map[string]int{"5m": 30, "5.5m": 35, "6m": 40, "6.5m": 25},
			Rating:        4.9, ReviewCount: 198,
			Colors: []models.ProductColor{
				{Name: "Midnight Navy", Value: "#191970", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Charcoal", Value: "#36454F", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Jet Black", Value: "#000000", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (36-38)", Meters: 5, Description: "Small size chest 36-38 inches (3-piece suit)"},
				{Size: "M (39-41)", Meters: 5.5, Description: "Medium size chest 39-41 inches (3-piece suit)"},
				{Size: "L (42-44)", Meters: 6, Description: "Large size chest 42-44 inches (3-piece suit)"},
				{Size: "XL (45-48)", Meters: 6.5, Description: "Extra Large chest 45-48 inches (3-piece suit)"},
			},
			Description: "Imported wool and cashmere blend for luxurious suits. Perfect drape and finish.",
			UseCases:    []string{"Business suits", "Formal wear", "Wedding suits", "Corporate attire"},
			IsOnSale:    true,
			Featured:    true,
		},
		{
			ID:       "6",
			Name:     "Elegant Koti Fabric",
			Price:    999,
			Image:    "/assets/fabric-collection.jpg",
			Category: "Koti",
			Gender:   models.GenderMen,
			Sizes:    []string{"1.5m", "2m", "2.5m"},
			Stock:    map[string]int{"1.5m": 45, "2m": 50, "2.5m": 40},
			Rating:   4.8, ReviewCount: 167,
			Colors: []models.ProductColor{
				{Name: "Deep Maroon", Value: "#800000", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Royal Blue", Value: "#4169E1", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
				{Name: "Emerald Green", Value: "#50C878", Images: []string{"/assets/fabric-collection.jpg", "/assets/fabric-collection.jpg"}},
			},
			FabricRequirements: []models.FabricRequirement{
				{Size: "S (36-38)", Meters: 1.5, Description: "Small size chest 36-38 inches"},
				{Size: "M (39-41)", Meters: 2, Description: "Medium size chest 39-41 inches"},
				{Size: "L (42-46)", Meters: 2.5, Description: "Large size chest 42-46 inches"},
			},
			Description: "Rich brocade and silk fabric for traditional koti/waistcoat. Adds elegance to any outfit.",
			UseCases:    []string{"Wedding wear", "Traditional functions", "Festive occasions", "Ethnic styling"},
			Featured:    true,
		},
	}
}
