package catalog

import "github.com/applimenta/backend/internal/domain"

// colombianProducts are the curated records, kept in the Open Food Facts
// field convention so they flow through the same normalization as remote
// records. Codes use the reserved 9990000000NN range.
var colombianProducts = []domain.RawProduct{
	{
		"id":           "arepa-corn-1",
		"product_name": "Arepa de Maíz Blanco Colombiana",
		"brands":       "Harina P.A.N.",
		"nutriments": map[string]any{
			"energy-kcal_100g":   360.0,
			"proteins_100g":      7.0,
			"carbohydrates_100g": 76.0,
			"fat_100g":           2.0,
			"fiber_100g":         4.0,
			"sugars_100g":        0.0,
			"salt_100g":          0.1,
		},
		"image_url":       "https://via.placeholder.com/300?text=Arepa+Ma%C3%ADz",
		"code":            "999000000001",
		"categories_tags": []string{"arepa", "maíz", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Harina de maíz precocida para preparar arepas",
	},
	{
		"id":           "coffee-colombian-1",
		"product_name": "Café Colombiano 100% Arábica",
		"brands":       "Juan Valdez",
		"nutriments": map[string]any{
			"energy-kcal_100g":   0.0,
			"proteins_100g":      0.0,
			"carbohydrates_100g": 0.0,
			"fat_100g":           0.0,
			"fiber_100g":         0.0,
			"sugars_100g":        0.0,
			"salt_100g":          0.0,
		},
		"image_url":       "https://via.placeholder.com/300?text=Caf%C3%A9",
		"code":            "999000000002",
		"categories_tags": []string{"café", "bebida", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Café gourmet de las montañas colombianas",
	},
	{
		"id":           "avocado-colombian-1",
		"product_name": "Aguacate Hass Colombiano",
		"brands":       "Frutas Frescas",
		"nutriments": map[string]any{
			"energy-kcal_100g":   160.0,
			"proteins_100g":      2.0,
			"carbohydrates_100g": 9.0,
			"fat_100g":           15.0,
			"fiber_100g":         7.0,
			"sugars_100g":        0.7,
			"salt_100g":          0.0,
		},
		"image_url":       "https://via.placeholder.com/300?text=Aguacate",
		"code":            "999000000003",
		"categories_tags": []string{"aguacate", "fruta", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Aguacate Hass fresco de Colombia",
	},
	{
		"id":           "chocolate-colombian-1",
		"product_name": "Chocolate Oscuro 70% Cacao Colombiano",
		"brands":       "Artesanal Colombiano",
		"nutriments": map[string]any{
			"energy-kcal_100g":   598.0,
			"proteins_100g":      7.0,
			"carbohydrates_100g": 48.0,
			"fat_100g":           43.0,
			"fiber_100g":         9.0,
			"sugars_100g":        28.0,
			"salt_100g":          0.01,
		},
		"image_url":       "https://via.placeholder.com/300?text=Chocolate",
		"code":            "999000000004",
		"categories_tags": []string{"chocolate", "postre", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Chocolate artesanal colombiano con 70% cacao",
	},
	{
		"id":           "beans-colombian-1",
		"product_name": "Frijoles Negros Colombianos",
		"brands":       "La Criolla",
		"nutriments": map[string]any{
			"energy-kcal_100g":   132.0,
			"proteins_100g":      9.0,
			"carbohydrates_100g": 24.0,
			"fat_100g":           0.5,
			"fiber_100g":         6.0,
			"sugars_100g":        2.0,
			"salt_100g":          0.05,
		},
		"image_url":       "https://via.placeholder.com/300?text=Frijoles",
		"code":            "999000000005",
		"categories_tags": []string{"frijoles", "frijol", "legumbre", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Frijoles negros secos de calidad colombiana",
	},
	{
		"id":           "plantain-colombian-1",
		"product_name": "Plátano Maduro Colombiano",
		"brands":       "Frutas Frescas",
		"nutriments": map[string]any{
			"energy-kcal_100g":   89.0,
			"proteins_100g":      1.0,
			"carbohydrates_100g": 23.0,
			"fat_100g":           0.3,
			"fiber_100g":         2.6,
			"sugars_100g":        12.0,
			"salt_100g":          0.0,
		},
		"image_url":       "https://via.placeholder.com/300?text=Pl%C3%A1tano",
		"code":            "999000000006",
		"categories_tags": []string{"plátano", "fruta", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Plátano maduro fresco de Colombia",
	},
	{
		"id":           "panela-colombian-1",
		"product_name": "Panela Colombiana Integral",
		"brands":       "Miel de Caña",
		"nutriments": map[string]any{
			"energy-kcal_100g":   351.0,
			"proteins_100g":      0.5,
			"carbohydrates_100g": 90.0,
			"fat_100g":           0.1,
			"fiber_100g":         0.0,
			"sugars_100g":        85.0,
			"salt_100g":          0.02,
		},
		"image_url":       "https://via.placeholder.com/300?text=Panela",
		"code":            "999000000007",
		"categories_tags": []string{"panela", "endulzante", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Panela artesanal de caña de azúcar",
	},
	{
		"id":           "bocadillo-colombian-1",
		"product_name": "Bocadillo Veleño de Guayaba",
		"brands":       "El Veleño",
		"nutriments": map[string]any{
			"energy-kcal_100g":   300.0,
			"proteins_100g":      0.4,
			"carbohydrates_100g": 77.0,
			"fat_100g":           0.2,
			"fiber_100g":         3.0,
			"sugars_100g":        65.0,
			"salt_100g":          0.01,
		},
		"image_url":       "https://via.placeholder.com/300?text=Bocadillo",
		"code":            "999000000008",
		"categories_tags": []string{"bocadillo", "guayaba", "dulce", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Dulce tradicional de guayaba y panela",
	},
	{
		"id":           "rice-colombian-1",
		"product_name": "Arroz Blanco Colombiano",
		"brands":       "Diana",
		"nutriments": map[string]any{
			"energy-kcal_100g":   365.0,
			"proteins_100g":      7.1,
			"carbohydrates_100g": 80.0,
			"fat_100g":           0.7,
			"fiber_100g":         1.3,
			"sugars_100g":        0.1,
			"salt_100g":          0.01,
		},
		"image_url":       "https://via.placeholder.com/300?text=Arroz",
		"code":            "999000000009",
		"categories_tags": []string{"arroz", "grano", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Arroz blanco de grano largo",
	},
	{
		"id":           "lentils-colombian-1",
		"product_name": "Lentejas Colombianas",
		"brands":       "La Criolla",
		"nutriments": map[string]any{
			"energy-kcal_100g":   116.0,
			"proteins_100g":      9.0,
			"carbohydrates_100g": 20.0,
			"fat_100g":           0.4,
			"fiber_100g":         8.0,
			"sugars_100g":        1.8,
			"salt_100g":          0.02,
		},
		"image_url":       "https://via.placeholder.com/300?text=Lentejas",
		"code":            "999000000010",
		"categories_tags": []string{"lentejas", "legumbre", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Lentejas secas para sopas y guisos",
	},
	{
		"id":           "cheese-colombian-1",
		"product_name": "Queso Campesino Colombiano",
		"brands":       "Alpina",
		"nutriments": map[string]any{
			"energy-kcal_100g":   264.0,
			"proteins_100g":      18.0,
			"carbohydrates_100g": 3.0,
			"fat_100g":           20.0,
			"fiber_100g":         0.0,
			"sugars_100g":        2.5,
			"salt_100g":          1.5,
		},
		"image_url":       "https://via.placeholder.com/300?text=Queso",
		"code":            "999000000011",
		"categories_tags": []string{"queso", "lácteo", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Queso fresco campesino tradicional",
	},
	{
		"id":           "corn-colombian-1",
		"product_name": "Maíz Tierno Desgranado",
		"brands":       "Del Campo",
		"nutriments": map[string]any{
			"energy-kcal_100g":   86.0,
			"proteins_100g":      3.3,
			"carbohydrates_100g": 19.0,
			"fat_100g":           1.2,
			"fiber_100g":         2.7,
			"sugars_100g":        3.2,
			"salt_100g":          0.02,
		},
		"image_url":       "https://via.placeholder.com/300?text=Ma%C3%ADz",
		"code":            "999000000012",
		"categories_tags": []string{"maíz", "verdura", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Maíz tierno desgranado para sopas y arepas",
	},
	{
		"id":           "mango-colombian-1",
		"product_name": "Mango Tommy Colombiano",
		"brands":       "Frutas Frescas",
		"nutriments": map[string]any{
			"energy-kcal_100g":   60.0,
			"proteins_100g":      0.8,
			"carbohydrates_100g": 15.0,
			"fat_100g":           0.4,
			"fiber_100g":         1.6,
			"sugars_100g":        14.0,
			"salt_100g":          0.0,
		},
		"image_url":       "https://via.placeholder.com/300?text=Mango",
		"code":            "999000000013",
		"categories_tags": []string{"mango", "fruta", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Mango Tommy Atkins maduro",
	},
	{
		"id":           "orange-colombian-1",
		"product_name": "Naranja Valencia Colombiana",
		"brands":       "Frutas Frescas",
		"nutriments": map[string]any{
			"energy-kcal_100g":   47.0,
			"proteins_100g":      0.9,
			"carbohydrates_100g": 12.0,
			"fat_100g":           0.1,
			"fiber_100g":         2.4,
			"sugars_100g":        9.0,
			"salt_100g":          0.0,
		},
		"image_url":       "https://via.placeholder.com/300?text=Naranja",
		"code":            "999000000014",
		"categories_tags": []string{"naranja", "fruta", "colombiano"},
		"countries_tags":  []string{"en:colombia"},
		"description":     "Naranja fresca de Colombia",
	},
}
