package models

import "strings"

// Category is the kind of email the user wants to write
type Category string

const (
	CategoryCustom            Category = "Custom"
	CategoryLeaveRequest      Category = "Leave Request"
	CategoryMeetingInvitation Category = "Meeting Invitation"
	CategoryFollowUp          Category = "Follow-Up"
	CategoryProjectUpdate     Category = "Project Update"
	CategoryClientOutreach    Category = "Client Outreach"
	CategoryGeneralInquiry    Category = "General Inquiry"
)

// Categories lists every category in selector order
var Categories = []Category{
	CategoryCustom,
	CategoryLeaveRequest,
	CategoryMeetingInvitation,
	CategoryFollowUp,
	CategoryProjectUpdate,
	CategoryClientOutreach,
	CategoryGeneralInquiry,
}

// ParseCategory resolves a category by display name or by its slug
// ("leave-request"); anything unknown is Custom.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c
		}
	}
	return CategoryCustom
}

// Slug is the URL-safe form of the category name
func (c Category) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(c), " ", "-"))
}

// Template is the subject and context pre-filled for a category
type Template struct {
	Category Category `json:"category"`
	Subject  string   `json:"subject"`
	Context  string   `json:"context"`
}
