package drafter

import "draftmail/models"

var templates = map[models.Category]models.Template{
	models.CategoryLeaveRequest: {
		Subject: "Leave Request for [Dates]",
		Context: "I would like to request leave from [start date] to [end date] due to [reason].",
	},
	models.CategoryMeetingInvitation: {
		Subject: "Meeting Invitation: [Topic]",
		Context: "I’d like to schedule a meeting to discuss [topic]. Please let me know your availability.",
	},
	models.CategoryFollowUp: {
		Subject: "Follow-Up on [Previous Topic]",
		Context: "I’m following up on our previous conversation regarding [topic]. Let me know if you need anything further.",
	},
	models.CategoryProjectUpdate: {
		Subject: "Project Update: [Project Name]",
		Context: "Here’s a brief update on the progress of [project name]. We’ve completed [milestone] and are now working on [next step].",
	},
	models.CategoryClientOutreach: {
		Subject: "Introduction and Services Overview",
		Context: "I’m reaching out to introduce our services and explore how we can support your goals.",
	},
	models.CategoryGeneralInquiry: {
		Subject: "Inquiry Regarding [Topic]",
		Context: "I’d like to inquire about [topic]. Could you please provide more details or point me to the right contact?",
	},
}

// SelectTemplate returns the pre-filled subject and context for category.
// Custom, and anything not in the table, yields two empty strings.
func SelectTemplate(category models.Category) (subject, context string) {
	tmpl, ok := templates[category]
	if !ok {
		return "", ""
	}
	return tmpl.Subject, tmpl.Context
}

// Templates returns the table in selector order, Custom included
func Templates() []models.Template {
	out := make([]models.Template, 0, len(models.Categories))
	for _, c := range models.Categories {
		subject, context := SelectTemplate(c)
		out = append(out, models.Template{Category: c, Subject: subject, Context: context})
	}
	return out
}
