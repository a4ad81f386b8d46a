package email

import (
	"strconv"
	"strings"
	"time"
)

// Message is a rendered-on-delivery email. It is the payload of the
// email:send task.
type Message struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template Template          `json:"template"`
	Data     map[string]string `json:"data"`
}

func Welcome(to, fullName string) Message {
	return Message{
		To:       to,
		Subject:  "Welcome to Recruitly!",
		Template: TemplateWelcome,
		Data:     map[string]string{"Name": firstName(fullName)},
	}
}

func ApplicationReceived(to, ownerName, jobTitle, applicantName string, applicationID int64) Message {
	return Message{
		To:       to,
		Subject:  "New application for " + jobTitle,
		Template: TemplateApplicationReceived,
		Data: map[string]string{
			"Name":          firstName(ownerName),
			"JobTitle":      jobTitle,
			"ApplicantName": applicantName,
			"ApplicationID": strconv.FormatInt(applicationID, 10),
		},
	}
}

func ApplicationStatus(to, seekerName, jobTitle, status string) Message {
	return Message{
		To:       to,
		Subject:  "Your application for " + jobTitle + " was updated",
		Template: TemplateApplicationStatus,
		Data: map[string]string{
			"Name":     firstName(seekerName),
			"JobTitle": jobTitle,
			"Status":   status,
		},
	}
}

func SubscriptionActivated(to, fullName, planName string, endsAt *time.Time) Message {
	data := map[string]string{
		"Name":     firstName(fullName),
		"PlanName": planName,
	}
	if endsAt != nil {
		data["RenewsOn"] = endsAt.Format("January 2, 2006")
	}

	return Message{
		To:       to,
		Subject:  "Your " + planName + " subscription is active",
		Template: TemplateSubscriptionActivated,
		Data:     data,
	}
}

func SubscriptionCancelled(to, fullName, planName string) Message {
	return Message{
		To:       to,
		Subject:  "Your subscription has been cancelled",
		Template: TemplateSubscriptionCancelled,
		Data: map[string]string{
			"Name":     firstName(fullName),
			"PlanName": planName,
		},
	}
}

func PaymentFailed(to, fullName, reason string) Message {
	return Message{
		To:       to,
		Subject:  "We could not process your payment",
		Template: TemplatePaymentFailed,
		Data: map[string]string{
			"Name":   firstName(fullName),
			"Reason": reason,
		},
	}
}

func SubscriptionExpiring(to, fullName, planName string, endsAt time.Time) Message {
	return Message{
		To:       to,
		Subject:  "Your subscription ends soon",
		Template: TemplateSubscriptionExpiring,
		Data: map[string]string{
			"Name":     firstName(fullName),
			"PlanName": planName,
			"EndsOn":   endsAt.Format("January 2, 2006"),
		},
	}
}

func ProfileIncomplete(to, fullName string, completion int) Message {
	return Message{
		To:       to,
		Subject:  "Complete your profile to get noticed",
		Template: TemplateProfileIncomplete,
		Data: map[string]string{
			"Name":       firstName(fullName),
			"Completion": strconv.Itoa(completion),
		},
	}
}

func TicketReceived(to, fullName string, ticketID int64, subject string) Message {
	return Message{
		To:       to,
		Subject:  "We received your request #" + strconv.FormatInt(ticketID, 10),
		Template: TemplateTicketReceived,
		Data: map[string]string{
			"Name":     firstName(fullName),
			"TicketID": strconv.FormatInt(ticketID, 10),
			"Subject":  subject,
		},
	}
}

func TicketResolved(to, fullName string, ticketID int64, resolution string) Message {
	return Message{
		To:       to,
		Subject:  "Your request #" + strconv.FormatInt(ticketID, 10) + " was resolved",
		Template: TemplateTicketResolved,
		Data: map[string]string{
			"Name":       firstName(fullName),
			"TicketID":   strconv.FormatInt(ticketID, 10),
			"Resolution": resolution,
		},
	}
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
