package service

import "github.com/folio/backend/internal/model"

// catalog is the portfolio's static project list, compiled into the binary.
// IDs are stable; order here is the presentation order.
var catalog = []*model.Project{
	{
		ID:          1,
		Title:       "Shopfront",
		Category:    model.CategoryWeb,
		Description: "A full e-commerce storefront with cart, checkout and order tracking.",
		ImageURL:    "/images/projects/shopfront.webp",
		Tags:        []string{"react", "stripe", "e-commerce"},
		LongDescription: "Shopfront started as a weekend rebuild of a client's aging " +
			"online store and grew into a complete storefront platform. It handles " +
			"product browsing, a persistent cart, checkout with card payments and " +
			"post-purchase order tracking, all behind a responsive interface.",
		Features: []string{
			"Product catalog with faceted filtering",
			"Persistent shopping cart",
			"Card checkout and order history",
			"Admin inventory dashboard",
		},
		Technologies: []string{"React", "TypeScript", "Node.js", "Stripe", "PostgreSQL"},
		Link:         "https://example.com/shopfront",
		Date:         "2024-03",
	},
	{
		ID:          2,
		Title:       "TrailTracker",
		Category:    model.CategoryMobile,
		Description: "A hiking companion app with offline maps and route recording.",
		ImageURL:    "/images/projects/trailtracker.webp",
		Tags:        []string{"flutter", "maps", "gps"},
		LongDescription: "TrailTracker records hikes with GPS even without coverage, " +
			"syncs them when back online and renders elevation profiles for every " +
			"route. Offline map tiles are prefetched for planned areas so the app " +
			"stays useful deep in the backcountry.",
		Features: []string{
			"Offline map tiles and route recording",
			"Elevation profiles and statistics",
			"Background GPS with battery budgeting",
			"Route sharing with friends",
		},
		Technologies: []string{"Flutter", "Dart", "SQLite", "Mapbox"},
		Link:         "https://example.com/trailtracker",
		Date:         "2023-11",
	},
	{
		ID:          3,
		Title:       "Northwind Rebrand",
		Category:    model.CategoryDesign,
		Description: "A complete visual identity refresh for a logistics company.",
		ImageURL:    "/images/projects/northwind.webp",
		Tags:        []string{"branding", "identity", "print"},
		LongDescription: "Northwind's thirty-year-old identity no longer matched the " +
			"company it had become. The rebrand delivered a new mark, a full color " +
			"and type system, stationery, fleet livery and a brand book that the " +
			"in-house team now applies without outside help.",
		Features: []string{
			"Logo and responsive mark variants",
			"Color and typography system",
			"Fleet and signage applications",
			"48-page brand guidelines book",
		},
		Technologies: []string{"Figma", "Illustrator", "InDesign"},
		Link:         "https://example.com/northwind",
		Date:         "2024-01",
	},
	{
		ID:          4,
		Title:       "Pulseboard",
		Category:    model.CategoryWeb,
		Description: "A real-time analytics dashboard for operations teams.",
		ImageURL:    "/images/projects/pulseboard.webp",
		Tags:        []string{"dashboard", "charts", "websockets"},
		LongDescription: "Pulseboard aggregates service metrics into one live view: " +
			"streaming charts, alert thresholds and incident annotations. It was " +
			"built for an ops team drowning in browser tabs and cut their mean " +
			"time-to-notice for incidents roughly in half.",
		Features: []string{
			"Live streaming charts over WebSockets",
			"Configurable alert thresholds",
			"Incident timeline annotations",
			"Dark mode tuned for NOC screens",
		},
		Technologies: []string{"Vue", "D3", "Go", "Redis"},
		Link:         "https://example.com/pulseboard",
		Date:         "2023-08",
	},
	{
		ID:          5,
		Title:       "Plately",
		Category:    model.CategoryMobile,
		Description: "A meal-planning app that builds grocery lists from recipes.",
		ImageURL:    "/images/projects/plately.webp",
		Tags:        []string{"react-native", "food", "planner"},
		LongDescription: "Plately turns a week of chosen recipes into a single " +
			"aisle-ordered grocery list, merging duplicate ingredients and scaling " +
			"quantities by household size. Pantry tracking subtracts what you " +
			"already have before the list is generated.",
		Features: []string{
			"Weekly meal planner",
			"Aisle-ordered merged grocery lists",
			"Pantry inventory tracking",
			"Recipe import from the web",
		},
		Technologies: []string{"React Native", "Expo", "Firebase"},
		Link:         "https://example.com/plately",
		Date:         "2024-05",
	},
	{
		ID:          6,
		Title:       "Fieldnotes UI Kit",
		Category:    model.CategoryDesign,
		Description: "An open design system for data-heavy scientific tools.",
		ImageURL:    "/images/projects/fieldnotes.webp",
		Tags:        []string{"design-system", "components", "accessibility"},
		LongDescription: "Fieldnotes is a design system for research software: dense " +
			"tables, long forms and measurement-unit-aware inputs, all meeting WCAG " +
			"AA. It ships as Figma libraries plus token exports that engineering " +
			"teams consume directly.",
		Features: []string{
			"120+ documented components",
			"Dense-data table patterns",
			"WCAG AA color and focus system",
			"Design tokens exported to code",
		},
		Technologies: []string{"Figma", "Tokens Studio", "Storybook"},
		Link:         "https://example.com/fieldnotes",
		Date:         "2023-06",
	},
}
