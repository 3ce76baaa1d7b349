package domain

// Catalog holds the fixed city and category sets. It is built once at
// startup and never mutated.
type Catalog struct {
	cities      []string
	categories  []string
	citySet     map[string]struct{}
	categorySet map[string]struct{}
}

// NewCatalog builds a Catalog from the given lists, preserving their order.
func NewCatalog(cities, categories []string) *Catalog {
	c := &Catalog{
		cities:      append([]string(nil), cities...),
		categories:  append([]string(nil), categories...),
		citySet:     make(map[string]struct{}, len(cities)),
		categorySet: make(map[string]struct{}, len(categories)),
	}
	for _, city := range cities {
		c.citySet[city] = struct{}{}
	}
	for _, cat := range categories {
		c.categorySet[cat] = struct{}{}
	}
	return c
}

// DefaultCatalog returns the cities and categories the marketplace serves.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCities, defaultCategories)
}

func (c *Catalog) HasCity(city string) bool {
	_, ok := c.citySet[city]
	return ok
}

func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.categorySet[category]
	return ok
}

// Cities returns a copy of the city list.
func (c *Catalog) Cities() []string {
	return append([]string(nil), c.cities...)
}

// Categories returns a copy of the category list.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

var defaultCities = []string{
	"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Adana", "Konya", "Şanlıurfa",
	"Gaziantep", "Kocaeli", "Mersin", "Diyarbakır", "Hatay", "Manisa", "Kayseri",
	"Samsun", "Balıkesir", "Kahramanmaraş", "Van", "Aydın", "Denizli", "Muğla",
	"Eskişehir", "Tekirdağ", "Ordu", "Trabzon", "Elazığ", "Malatya", "Sakarya",
	"Erzurum", "Çanakkale", "Zonguldak", "Isparta", "Afyonkarahisar", "Tokat",
}

var defaultCategories = []string{
	"Temizlik", "Nakliye", "Teknoloji", "Tadilat", "Bahçıvanlık", "Alışveriş",
	"Evcil Hayvan", "Eğitim", "Güvenlik", "Muhasebe", "Tasarım", "Çeviri",
	"Fotoğrafçılık", "Catering", "Organizasyon", "Sağlık", "Hukuk", "Danışmanlık",
}
