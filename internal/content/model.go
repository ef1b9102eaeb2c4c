package content

// Service is one card on the services page.
type Service struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	DateCreation string   `json:"dateCreation"`
	Features     []string `json:"features"`
}

type ServicesPage struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Services []Service `json:"services"`
}

// AppointmentService feeds the booking form's dropdown.
type AppointmentService struct {
	ID      int64  `json:"id"`
	TitleFR string `json:"title_fr"`
	TitleEN string `json:"title_en"`
	TitleAR string `json:"title_ar"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

type TeamPage struct {
	TeamTitle    string       `json:"teamTitle"`
	TeamSubtitle string       `json:"teamSubtitle"`
	Members      []TeamMember `json:"members"`
}

type Price struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

type PricingPlan struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Price    `json:"price"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	CTA         string   `json:"cta"`
}

type PricingToggle struct {
	Monthly string `json:"monthly"`
	Yearly  string `json:"yearly"`
}

type PricingPage struct {
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	PricingToggle PricingToggle `json:"pricingToggle"`
	Plans         []PricingPlan `json:"plans"`
	Disclaimer    string        `json:"disclaimer"`
}

// EquipmentRow is one piece of equipment with its localized type.
type EquipmentRow struct {
	Type string
	EquipmentItem
}

type EquipmentItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type EquipmentCategory struct {
	Name  string          `json:"name"`
	Items []EquipmentItem `json:"items"`
}

type EquipmentPage struct {
	Title      string              `json:"title"`
	Subtitle   string              `json:"subtitle"`
	Categories []EquipmentCategory `json:"categories"`
}

type Partner struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Star   int    `json:"star"`
}

type TestimonialsPage struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
}
