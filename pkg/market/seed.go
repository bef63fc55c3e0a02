package market

// Kenyan crops with typical base prices in KSH per kg and their home
// markets. Generation preserves this order.
var cropSeeds = []Seed{
	{Crop: "Maize", Location: "Nairobi Market", BasePrice: 45, Category: CategoryGrains, Quality: QualityGradeA},
	{Crop: "Beans", Location: "Mombasa Market", BasePrice: 120, Category: CategoryGrains, Quality: QualityOrganic},
	{Crop: "Sukuma Wiki", Location: "Kisumu Market", BasePrice: 25, Category: CategoryVegetables, Quality: QualityFresh},
	{Crop: "Tomatoes", Location: "Nakuru Market", BasePrice: 60, Category: CategoryVegetables, Quality: QualityGradeA},
	{Crop: "Onions", Location: "Eldoret Market", BasePrice: 80, Category: CategoryVegetables, Quality: QualityGradeA},
	{Crop: "Carrots", Location: "Nyeri Market", BasePrice: 70, Category: CategoryVegetables, Quality: QualityOrganic},
	{Crop: "Cabbage", Location: "Thika Market", BasePrice: 35, Category: CategoryVegetables, Quality: QualityFresh},
	{Crop: "Irish Potatoes", Location: "Meru Market", BasePrice: 55, Category: CategoryVegetables, Quality: QualityGradeA},
	{Crop: "Bananas", Location: "Kisii Market", BasePrice: 40, Category: CategoryFruits, Quality: QualityOrganic},
	{Crop: "Mangoes", Location: "Machakos Market", BasePrice: 90, Category: CategoryFruits, Quality: QualityGradeA},
	{Crop: "Avocados", Location: "Murang'a Market", BasePrice: 150, Category: CategoryFruits, Quality: QualityOrganic},
	{Crop: "Rice", Location: "Ahero Market", BasePrice: 85, Category: CategoryGrains, Quality: QualityGradeA},
}

// Seeds returns a copy of the full crop seed table.
func Seeds() []Seed {
	out := make([]Seed, len(cropSeeds))
	copy(out, cropSeeds)
	return out
}

// DashboardSeeds returns the shorter table the dashboard screen uses,
// the first eight crops.
func DashboardSeeds() []Seed {
	return Seeds()[:8]
}

// FindSeed looks a crop up by name. Trailing bool is false when the crop
// is not in the table.
func FindSeed(crop string) (Seed, bool) {
	for _, s := range cropSeeds {
		if s.Crop == crop {
			return s, true
		}
	}
	return Seed{}, false
}
