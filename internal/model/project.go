package model

// Project categories. CategoryAll is a pseudo-category used for filtering only;
// no project record carries it.
const (
	CategoryAll    = "all"
	CategoryWeb    = "web"
	CategoryMobile = "mobile"
	CategoryDesign = "design"
)

// ValidCategory reports whether s is a filterable category, including "all".
func ValidCategory(s string) bool {
	switch s {
	case CategoryAll, CategoryWeb, CategoryMobile, CategoryDesign:
		return true
	}
	return false
}

// Project is a portfolio entry. The catalog is compiled into the binary;
// IDs are unique and never reassigned.
type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"` // "web" | "mobile" | "design"
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	Tags            []string `json:"tags"`
	LongDescription string   `json:"long_description"`
	Features        []string `json:"features"`
	Technologies    []string `json:"technologies"`
	Link            string   `json:"link"`
	Date            string   `json:"date"` // "YYYY-MM"
}
