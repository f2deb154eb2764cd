package registry

import "github.com/goliatone/go-biolink/internal/schema"

// DefaultCatalog returns the built-in theme descriptors, grouped by category
// in presentation order. Hosts can append their own descriptors through
// configuration; ids here are part of the public contract because published
// pages reference them.
func DefaultCatalog() []ThemeDescriptor {
	out := make([]ThemeDescriptor, 0, 22)
	out = append(out, freelancerThemes()...)
	out = append(out, portfolioThemes()...)
	out = append(out, productThemes()...)
	out = append(out, businessThemes()...)
	return out
}

func socialsField() schema.FieldSpec {
	return schema.FieldSpec{
		Name: "socials", Kind: schema.KindObject, Label: "Social links",
		Fields: []schema.FieldSpec{
			{Name: "twitter", Kind: schema.KindURL, Label: "Twitter / X", Placeholder: "https://x.com/you"},
			{Name: "instagram", Kind: schema.KindURL, Label: "Instagram", Placeholder: "https://instagram.com/you"},
			{Name: "linkedin", Kind: schema.KindURL, Label: "LinkedIn", Placeholder: "https://linkedin.com/in/you"},
			{Name: "github", Kind: schema.KindURL, Label: "GitHub", Placeholder: "https://github.com/you"},
		},
	}
}

func linksField(label string, maxItems int) schema.FieldSpec {
	return schema.FieldSpec{
		Name: "links", Kind: schema.KindArray, Label: label, MaxItems: maxItems,
		HelperText: "Each link becomes a button on your page.",
		ItemFields: []schema.FieldSpec{
			{Name: "label", Kind: schema.KindText, Label: "Label", MaxLength: 40},
			{Name: "url", Kind: schema.KindURL, Label: "URL", Placeholder: "https://"},
		},
	}
}

func freelancerThemes() []ThemeDescriptor {
	return []ThemeDescriptor{
		{
			ID:             "quickpitch",
			Category:       CategoryFreelancers,
			DisplayName:    "Quick Pitch",
			Description:    "One bold headline, your services, and a way to reach you.",
			RequiredFields: []string{"headline", "subhead", "email"},
			FieldSchema: []schema.FieldSpec{
				{Name: "headline", Kind: schema.KindText, Required: true, Label: "Headline", Placeholder: "I build websites that convert", MaxLength: 80},
				{Name: "subhead", Kind: schema.KindText, Required: true, Label: "Subheadline", Placeholder: "Fast, reliable, on budget", MaxLength: 120},
				{Name: "email", Kind: schema.KindEmail, Required: true, Label: "Contact email"},
				{Name: "phone", Kind: schema.KindTel, Label: "Phone", HelperText: "Shown as a tap-to-call button."},
				{
					Name: "services", Kind: schema.KindArray, Label: "Services", MaxItems: 8,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Service", MaxLength: 60},
						{Name: "desc", Kind: schema.KindTextarea, Label: "Description"},
					},
				},
				{Name: "skills", Kind: schema.KindTags, Label: "Skills", Placeholder: "design, webflow, seo", HelperText: "Comma separated."},
			},
		},
		{
			ID:             "craftfolio",
			Category:       CategoryFreelancers,
			DisplayName:    "Craftfolio",
			Description:    "A warm, personal card for makers and craftspeople.",
			RequiredFields: []string{"name", "craft"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Your name", MaxLength: 60},
				{Name: "craft", Kind: schema.KindText, Required: true, Label: "What you make", Placeholder: "Hand-bound notebooks", MaxLength: 80},
				{Name: "story", Kind: schema.KindTextarea, Label: "Your story", HelperText: "Markdown is supported."},
				{Name: "commissions_open", Kind: schema.KindBoolean, Label: "Open for commissions"},
				linksField("Shop links", 6),
				socialsField(),
			},
		},
		{
			ID:             "devcard",
			Category:       CategoryFreelancers,
			DisplayName:    "Dev Card",
			Description:    "A terminal-styled card for software contractors.",
			RequiredFields: []string{"handle", "stack", "email"},
			FieldSchema: []schema.FieldSpec{
				{Name: "handle", Kind: schema.KindText, Required: true, Label: "Handle", Placeholder: "@you", MaxLength: 40},
				{Name: "stack", Kind: schema.KindTags, Required: true, Label: "Stack", Placeholder: "go, postgres, react"},
				{Name: "email", Kind: schema.KindEmail, Required: true, Label: "Email"},
				{Name: "rate", Kind: schema.KindNumber, Label: "Day rate (USD)", Min: schema.Float64(0)},
				{Name: "available_from", Kind: schema.KindDate, Label: "Available from"},
				{
					Name: "projects", Kind: schema.KindArray, Label: "Selected projects", MaxItems: 5,
					ItemFields: []schema.FieldSpec{
						{Name: "name", Kind: schema.KindText, Label: "Project", MaxLength: 60},
						{Name: "url", Kind: schema.KindURL, Label: "Link"},
						{Name: "tech", Kind: schema.KindTags, Label: "Tech", Placeholder: "go, grpc"},
					},
				},
			},
		},
		{
			ID:             "consultly",
			Category:       CategoryFreelancers,
			DisplayName:    "Consultly",
			Description:    "Authority-first layout for consultants and advisors.",
			RequiredFields: []string{"name", "specialty", "email"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "specialty", Kind: schema.KindText, Required: true, Label: "Specialty", Placeholder: "Pricing strategy for SaaS", MaxLength: 100},
				{Name: "email", Kind: schema.KindEmail, Required: true, Label: "Email"},
				{Name: "booking_url", Kind: schema.KindURL, Label: "Booking link", HelperText: "Calendly or similar."},
				{Name: "credentials", Kind: schema.KindTextarea, Label: "Credentials"},
				{
					Name: "engagements", Kind: schema.KindArray, Label: "Engagement types", MaxItems: 4,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Title", MaxLength: 60},
						{Name: "desc", Kind: schema.KindTextarea, Label: "What's included"},
						{Name: "price", Kind: schema.KindText, Label: "Price", Placeholder: "from $2,500"},
					},
				},
			},
		},
		{
			ID:             "gigboard",
			Category:       CategoryFreelancers,
			DisplayName:    "Gig Board",
			Description:    "List every service you offer like a job board.",
			RequiredFields: []string{"title"},
			FieldSchema: []schema.FieldSpec{
				{Name: "title", Kind: schema.KindText, Required: true, Label: "Board title", Placeholder: "Hire me for", MaxLength: 60},
				{Name: "intro", Kind: schema.KindTextarea, Label: "Intro"},
				{Name: "response_time", Kind: schema.KindSelect, Label: "Typical response time", Options: []string{"same day", "24 hours", "2-3 days"}},
				{
					Name: "gigs", Kind: schema.KindArray, Label: "Gigs", MaxItems: 12,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Gig", MaxLength: 80},
						{Name: "price", Kind: schema.KindText, Label: "Price"},
						{Name: "turnaround", Kind: schema.KindText, Label: "Turnaround"},
					},
				},
				socialsField(),
			},
		},
	}
}

func portfolioThemes() []ThemeDescriptor {
	return []ThemeDescriptor{
		{
			ID:             "minimalistcv",
			Category:       CategoryPortfolios,
			DisplayName:    "Minimalist CV",
			Description:    "A quiet, typographic resume page.",
			RequiredFields: []string{"name", "role"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "role", Kind: schema.KindText, Required: true, Label: "Role", Placeholder: "Product designer", MaxLength: 80},
				{Name: "summary", Kind: schema.KindTextarea, Label: "Summary"},
				{Name: "email", Kind: schema.KindEmail, Label: "Email"},
				{
					Name: "experience", Kind: schema.KindArray, Label: "Experience", MaxItems: 10,
					ItemFields: []schema.FieldSpec{
						{Name: "company", Kind: schema.KindText, Label: "Company", MaxLength: 60},
						{Name: "title", Kind: schema.KindText, Label: "Title", MaxLength: 60},
						{Name: "period", Kind: schema.KindText, Label: "Period", Placeholder: "2021 — now"},
						{Name: "bullets", Kind: schema.KindTags, Label: "Highlights", HelperText: "Comma separated bullet points."},
					},
				},
				{
					Name: "education", Kind: schema.KindArray, Label: "Education", MaxItems: 4,
					ItemFields: []schema.FieldSpec{
						{Name: "school", Kind: schema.KindText, Label: "School", MaxLength: 80},
						{Name: "degree", Kind: schema.KindText, Label: "Degree", MaxLength: 80},
						{Name: "year", Kind: schema.KindText, Label: "Year"},
					},
				},
			},
		},
		{
			ID:             "gridshot",
			Category:       CategoryPortfolios,
			DisplayName:    "Gridshot",
			Description:    "An image-forward grid for photographers.",
			RequiredFields: []string{"name"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "tagline", Kind: schema.KindText, Label: "Tagline", MaxLength: 100},
				{
					Name: "shots", Kind: schema.KindArray, Label: "Shots", MaxItems: 24,
					ItemFields: []schema.FieldSpec{
						{Name: "image_url", Kind: schema.KindURL, Label: "Image URL"},
						{Name: "caption", Kind: schema.KindText, Label: "Caption", MaxLength: 120},
					},
				},
				socialsField(),
			},
		},
		{
			ID:             "caselight",
			Category:       CategoryPortfolios,
			DisplayName:    "Caselight",
			Description:    "Long-form case studies with outcomes up front.",
			RequiredFields: []string{"name", "discipline"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "discipline", Kind: schema.KindText, Required: true, Label: "Discipline", MaxLength: 80},
				{
					Name: "cases", Kind: schema.KindArray, Label: "Case studies", MaxItems: 6,
					ItemFields: []schema.FieldSpec{
						{Name: "client", Kind: schema.KindText, Label: "Client", MaxLength: 60},
						{Name: "outcome", Kind: schema.KindText, Label: "Outcome", Placeholder: "+38% signups"},
						{Name: "body", Kind: schema.KindTextarea, Label: "Write-up"},
						{Name: "tags", Kind: schema.KindTags, Label: "Tags"},
					},
				},
			},
		},
		{
			ID:             "showreel",
			Category:       CategoryPortfolios,
			DisplayName:    "Showreel",
			Description:    "Front-and-center video reel with credits.",
			RequiredFields: []string{"name", "reel_url"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "reel_url", Kind: schema.KindURL, Required: true, Label: "Reel URL"},
				{Name: "bio", Kind: schema.KindTextarea, Label: "Bio"},
				{
					Name: "credits", Kind: schema.KindArray, Label: "Credits", MaxItems: 12,
					ItemFields: []schema.FieldSpec{
						{Name: "production", Kind: schema.KindText, Label: "Production", MaxLength: 80},
						{Name: "role", Kind: schema.KindText, Label: "Role", MaxLength: 60},
						{Name: "year", Kind: schema.KindText, Label: "Year"},
					},
				},
			},
		},
		{
			ID:             "inkwell",
			Category:       CategoryPortfolios,
			DisplayName:    "Inkwell",
			Description:    "A writer's page: selected pieces and publications.",
			RequiredFields: []string{"name"},
			FieldSchema: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Label: "Name", MaxLength: 60},
				{Name: "beat", Kind: schema.KindText, Label: "Beat", Placeholder: "Climate, tech policy", MaxLength: 80},
				{Name: "bio", Kind: schema.KindTextarea, Label: "Bio"},
				{
					Name: "pieces", Kind: schema.KindArray, Label: "Selected pieces", MaxItems: 15,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Title", MaxLength: 120},
						{Name: "publication", Kind: schema.KindText, Label: "Publication", MaxLength: 60},
						{Name: "url", Kind: schema.KindURL, Label: "Link"},
					},
				},
				{Name: "topics", Kind: schema.KindTags, Label: "Topics"},
			},
		},
	}
}

func productThemes() []ThemeDescriptor {
	return []ThemeDescriptor{
		{
			ID:             "launchpad",
			Category:       CategoryProducts,
			DisplayName:    "Launchpad",
			Description:    "A launch page with feature list and waitlist link.",
			RequiredFields: []string{"product", "pitch"},
			FieldSchema: []schema.FieldSpec{
				{Name: "product", Kind: schema.KindText, Required: true, Label: "Product name", MaxLength: 60},
				{Name: "pitch", Kind: schema.KindText, Required: true, Label: "One-line pitch", MaxLength: 120},
				{Name: "launch_date", Kind: schema.KindDate, Label: "Launch date"},
				{Name: "waitlist_url", Kind: schema.KindURL, Label: "Waitlist link"},
				{
					Name: "features", Kind: schema.KindArray, Label: "Features", MaxItems: 8,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Feature", MaxLength: 60},
						{Name: "desc", Kind: schema.KindTextarea, Label: "Description"},
					},
				},
			},
		},
		{
			ID:             "preorder",
			Category:       CategoryProducts,
			DisplayName:    "Preorder",
			Description:    "Single product, single call to action.",
			RequiredFields: []string{"product", "price", "order_url"},
			FieldSchema: []schema.FieldSpec{
				{Name: "product", Kind: schema.KindText, Required: true, Label: "Product", MaxLength: 60},
				{Name: "price", Kind: schema.KindNumber, Required: true, Label: "Price", Min: schema.Float64(0)},
				{Name: "order_url", Kind: schema.KindURL, Required: true, Label: "Order link"},
				{Name: "description", Kind: schema.KindTextarea, Label: "Description"},
				{Name: "ships", Kind: schema.KindSelect, Label: "Ships", Options: []string{"worldwide", "us only", "eu only"}},
			},
		},
		{
			ID:             "featurestack",
			Category:       CategoryProducts,
			DisplayName:    "Feature Stack",
			Description:    "Compare plans and features side by side.",
			RequiredFields: []string{"product"},
			FieldSchema: []schema.FieldSpec{
				{Name: "product", Kind: schema.KindText, Required: true, Label: "Product", MaxLength: 60},
				{Name: "tagline", Kind: schema.KindText, Label: "Tagline", MaxLength: 100},
				{
					Name: "plans", Kind: schema.KindArray, Label: "Plans", MaxItems: 4,
					ItemFields: []schema.FieldSpec{
						{Name: "name", Kind: schema.KindText, Label: "Plan", MaxLength: 40},
						{Name: "price", Kind: schema.KindText, Label: "Price", Placeholder: "$9/mo"},
						{Name: "features", Kind: schema.KindTags, Label: "Features", HelperText: "Comma separated."},
					},
				},
			},
		},
		{
			ID:             "appsplash",
			Category:       CategoryProducts,
			DisplayName:    "App Splash",
			Description:    "Store badges and screenshots for a mobile app.",
			RequiredFields: []string{"app_name", "store_url"},
			FieldSchema: []schema.FieldSpec{
				{Name: "app_name", Kind: schema.KindText, Required: true, Label: "App name", MaxLength: 60},
				{Name: "store_url", Kind: schema.KindURL, Required: true, Label: "Store link"},
				{Name: "play_url", Kind: schema.KindURL, Label: "Play Store link"},
				{Name: "pitch", Kind: schema.KindTextarea, Label: "Pitch"},
				{
					Name: "screens", Kind: schema.KindArray, Label: "Screenshots", MaxItems: 8,
					ItemFields: []schema.FieldSpec{
						{Name: "image_url", Kind: schema.KindURL, Label: "Image URL"},
						{Name: "caption", Kind: schema.KindText, Label: "Caption", MaxLength: 80},
					},
				},
			},
		},
		{
			ID:             "makerlog",
			Category:       CategoryProducts,
			DisplayName:    "Maker Log",
			Description:    "Build-in-public updates for an indie product.",
			RequiredFields: []string{"product", "maker"},
			FieldSchema: []schema.FieldSpec{
				{Name: "product", Kind: schema.KindText, Required: true, Label: "Product", MaxLength: 60},
				{Name: "maker", Kind: schema.KindText, Required: true, Label: "Maker", MaxLength: 60},
				{Name: "mrr_public", Kind: schema.KindBoolean, Label: "Show revenue publicly"},
				{
					Name: "updates", Kind: schema.KindArray, Label: "Updates", MaxItems: 20,
					ItemFields: []schema.FieldSpec{
						{Name: "date", Kind: schema.KindDate, Label: "Date"},
						{Name: "note", Kind: schema.KindTextarea, Label: "Update"},
					},
				},
				socialsField(),
			},
		},
	}
}

func businessThemes() []ThemeDescriptor {
	return []ThemeDescriptor{
		{
			ID:             "storefront",
			Category:       CategoryBusinesses,
			DisplayName:    "Storefront",
			Description:    "Hours, location and highlights for a local shop.",
			RequiredFields: []string{"business", "address"},
			FieldSchema: []schema.FieldSpec{
				{Name: "business", Kind: schema.KindText, Required: true, Label: "Business name", MaxLength: 80},
				{Name: "address", Kind: schema.KindText, Required: true, Label: "Address", MaxLength: 160},
				{Name: "phone", Kind: schema.KindTel, Label: "Phone"},
				{Name: "about", Kind: schema.KindTextarea, Label: "About"},
				{
					Name: "hours", Kind: schema.KindObject, Label: "Hours",
					Fields: []schema.FieldSpec{
						{Name: "weekdays", Kind: schema.KindText, Label: "Mon–Fri", Placeholder: "9:00–18:00"},
						{Name: "saturday", Kind: schema.KindText, Label: "Saturday"},
						{Name: "sunday", Kind: schema.KindText, Label: "Sunday"},
					},
				},
				{Name: "highlights", Kind: schema.KindTags, Label: "Highlights", Placeholder: "espresso, pastries, wifi"},
			},
		},
		{
			ID:             "localspot",
			Category:       CategoryBusinesses,
			DisplayName:    "Local Spot",
			Description:    "A photo-led card for cafes and venues.",
			RequiredFields: []string{"business"},
			FieldSchema: []schema.FieldSpec{
				{Name: "business", Kind: schema.KindText, Required: true, Label: "Business name", MaxLength: 80},
				{Name: "cover_url", Kind: schema.KindURL, Label: "Cover photo URL"},
				{Name: "blurb", Kind: schema.KindTextarea, Label: "Blurb"},
				linksField("Links", 8),
				socialsField(),
			},
		},
		{
			ID:             "agencyline",
			Category:       CategoryBusinesses,
			DisplayName:    "Agency Line",
			Description:    "Capabilities and clients for a small agency.",
			RequiredFields: []string{"agency", "email"},
			FieldSchema: []schema.FieldSpec{
				{Name: "agency", Kind: schema.KindText, Required: true, Label: "Agency name", MaxLength: 80},
				{Name: "email", Kind: schema.KindEmail, Required: true, Label: "New business email"},
				{Name: "capabilities", Kind: schema.KindTags, Label: "Capabilities", Placeholder: "brand, web, motion"},
				{
					Name: "clients", Kind: schema.KindArray, Label: "Clients", MaxItems: 12,
					ItemFields: []schema.FieldSpec{
						{Name: "name", Kind: schema.KindText, Label: "Client", MaxLength: 60},
						{Name: "work", Kind: schema.KindText, Label: "Work", MaxLength: 100},
					},
				},
			},
		},
		{
			ID:             "menuboard",
			Category:       CategoryBusinesses,
			DisplayName:    "Menu Board",
			Description:    "A sectioned menu for restaurants and food trucks.",
			RequiredFields: []string{"business"},
			FieldSchema: []schema.FieldSpec{
				{Name: "business", Kind: schema.KindText, Required: true, Label: "Business name", MaxLength: 80},
				{Name: "note", Kind: schema.KindText, Label: "Note", Placeholder: "Cash only", MaxLength: 120},
				{
					Name: "sections", Kind: schema.KindArray, Label: "Menu sections", MaxItems: 8,
					ItemFields: []schema.FieldSpec{
						{Name: "title", Kind: schema.KindText, Label: "Section", MaxLength: 60},
						{
							Name: "items", Kind: schema.KindArray, Label: "Items",
							ItemFields: []schema.FieldSpec{
								{Name: "dish", Kind: schema.KindText, Label: "Dish", MaxLength: 80},
								{Name: "price", Kind: schema.KindText, Label: "Price"},
								{Name: "diets", Kind: schema.KindTags, Label: "Diet tags", Placeholder: "vegan, gf"},
							},
						},
					},
				},
			},
		},
		{
			ID:             "bookme",
			Category:       CategoryBusinesses,
			DisplayName:    "Book Me",
			Description:    "Services with prices and a booking link.",
			RequiredFields: []string{"business", "booking_url"},
			FieldSchema: []schema.FieldSpec{
				{Name: "business", Kind: schema.KindText, Required: true, Label: "Business name", MaxLength: 80},
				{Name: "booking_url", Kind: schema.KindURL, Required: true, Label: "Booking link"},
				{Name: "intro", Kind: schema.KindTextarea, Label: "Intro"},
				{
					Name: "treatments", Kind: schema.KindArray, Label: "Services", MaxItems: 15,
					ItemFields: []schema.FieldSpec{
						{Name: "name", Kind: schema.KindText, Label: "Service", MaxLength: 80},
						{Name: "duration", Kind: schema.KindText, Label: "Duration", Placeholder: "45 min"},
						{Name: "price", Kind: schema.KindText, Label: "Price"},
					},
				},
			},
		},
	}
}
