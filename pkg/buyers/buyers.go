package buyers

import "strings"

// Profile is one buyer in the directory. Profiles are seeded at load and
// never mutated.
type Profile struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Demand      string   `json:"demand"`
	TotalOrders int      `json:"total_orders"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Products    []string `json:"products"`
	DistanceKm  float64  `json:"distance_km"`
}

var directory = []Profile{
	{
		ID:          1,
		Name:        "FreshCo Market",
		Location:    "Nairobi, CBD",
		Rating:      4.5,
		Demand:      "100kg Tomatoes weekly",
		TotalOrders: 42,
		Phone:       "+254700123456",
		Email:       "orders@freshco.co.ke",
		Products:    []string{"tomatoes", "onions"},
		DistanceKm:  5,
	},
	{
		ID:          2,
		Name:        "Green Valley Restaurant",
		Location:    "Westlands, Nairobi",
		Rating:      4.2,
		Demand:      "50kg Potatoes daily",
		TotalOrders: 28,
		Phone:       "+254711234567",
		Email:       "supplies@greenvalley.com",
		Products:    []string{"potatoes", "carrots"},
		DistanceKm:  8,
	},
	{
		ID:          3,
		Name:        "Organic Foods Ltd",
		Location:    "Karen, Nairobi",
		Rating:      4.8,
		Demand:      "Mixed seasonal vegetables",
		TotalOrders: 65,
		Phone:       "+254722345678",
		Email:       "procurement@organicfoods.co.ke",
		Products:    []string{"kale", "spinach", "lettuce"},
		DistanceKm:  12,
	},
	{
		ID:          4,
		Name:        "Mama Mboga Wholesale",
		Location:    "Eastleigh, Nairobi",
		Rating:      3.9,
		Demand:      "200kg Onions bi-weekly",
		TotalOrders: 37,
		Phone:       "+254733456789",
		Email:       "mamamboga@business.com",
		Products:    []string{"onions", "garlic"},
		DistanceKm:  7,
	},
}

// Directory returns a copy of the seeded buyer list.
func Directory() []Profile {
	out := make([]Profile, len(directory))
	copy(out, directory)
	return out
}

// Filter narrows the directory. Empty string fields and a zero MinRating
// match everything; set fields are ANDed.
type Filter struct {
	Product   string
	Location  string
	MinRating float64
}

func (f Filter) IsZero() bool {
	return f.Product == "" && f.Location == "" && f.MinRating == 0
}

// Apply returns the buyers satisfying every set predicate.
func Apply(profiles []Profile, f Filter) []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Profile, f Filter) bool {
	if f.Product != "" && !sellsProduct(p, f.Product) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	return p.Rating >= f.MinRating
}

func sellsProduct(p Profile, product string) bool {
	needle := strings.ToLower(product)
	for _, tag := range p.Products {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
