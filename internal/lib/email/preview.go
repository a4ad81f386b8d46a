package email

// PreviewData holds sample variables for rendering each template without a
// real recipient.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Name": "John",
	},
	TemplateApplicationReceived: {
		"Name":          "Maria",
		"JobTitle":      "Backend Engineer",
		"ApplicantName": "John Doe",
		"ApplicationID": "42",
	},
	TemplateApplicationStatus: {
		"Name":     "John",
		"JobTitle": "Backend Engineer",
		"Status":   "interview",
	},
	TemplateSubscriptionActivated: {
		"Name":     "Maria",
		"PlanName": "Pro",
		"RenewsOn": "January 2, 2027",
	},
	TemplateSubscriptionCancelled: {
		"Name":     "Maria",
		"PlanName": "Pro",
	},
	TemplatePaymentFailed: {
		"Name":   "Maria",
		"Reason": "Card declined",
	},
	TemplateSubscriptionExpiring: {
		"Name":     "Maria",
		"PlanName": "Pro",
		"EndsOn":   "January 2, 2027",
	},
	TemplateProfileIncomplete: {
		"Name":       "John",
		"Completion": "60",
	},
	TemplateTicketReceived: {
		"Name":     "John",
		"TicketID": "7",
		"Subject":  "Cannot upload resume",
	},
	TemplateTicketResolved: {
		"Name":       "John",
		"TicketID":   "7",
		"Resolution": "The upload limit was raised to 10 MB.",
	},
}

// Preview renders name with its sample data.
func (c *Client) Preview(name Template) (string, error) {
	return c.Render(name, PreviewData[name])
}
