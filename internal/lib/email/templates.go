package email

// Template names an embedded HTML template under templates/.
type Template string

const (
	TemplateWelcome               Template = "welcome"
	TemplateApplicationReceived   Template = "application_received"
	TemplateApplicationStatus     Template = "application_status"
	TemplateSubscriptionActivated Template = "subscription_activated"
	TemplateSubscriptionCancelled Template = "subscription_cancelled"
	TemplatePaymentFailed         Template = "payment_failed"
	TemplateSubscriptionExpiring  Template = "subscription_expiring"
	TemplateProfileIncomplete     Template = "profile_incomplete"
	TemplateTicketReceived        Template = "ticket_received"
	TemplateTicketResolved        Template = "ticket_resolved"
)

var Templates = []Template{
	TemplateWelcome,
	TemplateApplicationReceived,
	TemplateApplicationStatus,
	TemplateSubscriptionActivated,
	TemplateSubscriptionCancelled,
	TemplatePaymentFailed,
	TemplateSubscriptionExpiring,
	TemplateProfileIncomplete,
	TemplateTicketReceived,
	TemplateTicketResolved,
}

func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

func (t Template) file() string {
	return string(t) + ".html"
}
