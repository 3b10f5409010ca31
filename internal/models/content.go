package models

// Content entities managed through the admin back-office adapters. The
// dashboard only passes these through; all validation lives server-side.

// Category groups lessons for navigation.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsVisible   bool   `json:"is_visible"`
}

// Tag is a free-form label attached to lessons.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Lesson is a piece of member-facing educational content.
type Lesson struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	CategoryID *int64  `json:"category_id"`
	TagIDs     []int64 `json:"tag_ids,omitempty"`
	Content    string  `json:"content"`
	VideoURL   string  `json:"video_url,omitempty"`
	Published  bool    `json:"published"`
}

// MembershipPlan is a purchasable access tier.
type MembershipPlan struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	PriceCents    int      `json:"price_cents"`
	BillingPeriod string   `json:"billing_period"` // monthly, yearly
	RoomSlugs     []string `json:"room_slugs,omitempty"`
	Active        bool     `json:"active"`
}

// Popup is a site popup campaign.
type Popup struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // newsletter, exit_intent, timed
	Status   string `json:"status"`
	Priority int    `json:"priority"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	CtaText  string `json:"cta_text,omitempty"`
	CtaURL   string `json:"cta_url,omitempty"`
}
