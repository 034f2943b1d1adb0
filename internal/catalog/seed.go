package catalog

// Seed returns the current Chaunsa harvest.
func Seed() *Catalog {
	return New([]Product{
		{
			ID:          "1",
			Name:        "Chaunsa Standard Box",
			Description: "Freshly ripened to a beautiful golden yellow. Hand-picked and nested in newspaper lining for that signature honey-sweet aroma.",
			Price:       1500,
			Unit:        "4.5kg - 5kg Box",
			Image:       "https://images.unsplash.com/photo-1553279768-865429fa0078?q=80&w=1000&auto=format&fit=crop",
			Category:    CategoryStandard,
			Stock:       24,
			Reviews: []Review{
				{ID: "r1", Author: "Amina K.", Rating: 5, Comment: "Beautifully yellow and so sweet! The perfect 5kg box.", Date: "2024-05-12"},
			},
		},
		{
			ID:          "2",
			Name:        "Chaunsa Heritage Pattie",
			Description: "The traditional 10kg Peti. Fully matured, fiber-less, and glowing yellow - the true taste of the Punjab heritage.",
			Price:       2500,
			Unit:        "10kg Pattie",
			Image:       "https://images.unsplash.com/photo-1591073113125-e46713c829ed?q=80&w=1000&auto=format&fit=crop",
			Category:    CategoryStandard,
			Stock:       7,
			Reviews: []Review{
				{ID: "r3", Author: "Sajid M.", Rating: 5, Comment: "Authentic 10kg Peti. Arrived perfectly ripe and yellow.", Date: "2024-05-14"},
			},
		},
		{
			ID:          "3",
			Name:        "Bulk Mega Harvest",
			Description: "Our largest 13kg box. Ideal for families who want a steady supply of ripe, sun-kissed yellow mangoes throughout the week.",
			Price:       3000,
			Unit:        "13kg Mega Box",
			Image:       "https://images.unsplash.com/photo-1601493700631-2b16ec4b4716?q=80&w=1000&auto=format&fit=crop",
			Category:    CategoryBulk,
			Stock:       15,
		},
		{
			ID:          "4",
			Name:        "XL Premium Sovereign Box",
			Description: "The apex of our harvest. This exclusive selection features monolithic Chaunsa specimens, where each individual fruit weighs an astounding half-kilogram.",
			Price:       4000,
			Unit:        "4.5kg - 5kg XL Premium Box",
			Image:       "https://pictures.grocerapps.com/original/grocerapp-mango-white-chaunsa-5kg-box-64958fcfea299.png",
			Category:    CategoryPremium,
			Stock:       2,
			Reviews: []Review{
				{ID: "r4", Author: "Elena R.", Rating: 5, Comment: "Incredible size and deep yellow color. Each massive mango is roughly half a kg!", Date: "2024-05-15"},
			},
		},
	})
}
