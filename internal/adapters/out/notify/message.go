// Package notify delivers notification intents after a command committed.
// The Dispatcher renders each intent once and fans it out to its sinks
// (email and the websocket hub). Failed deliveries are logged and kept in a
// bounded retry queue that the notification job drains.
package notify

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"reco/internal/core/domain/model/notification"
)

// Message is a rendered intent, ready for any sink.
type Message struct {
	Kind        string            `json:"kind"`
	RecipientID string            `json:"recipient_id"`
	Email       string            `json:"-"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	Payload     map[string]string `json:"payload"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

type messageTemplate struct {
	subject string
	body    *template.Template
}

func mustTemplate(kind notification.Kind, subject, body string) messageTemplate {
	return messageTemplate{
		subject: subject,
		body:    template.Must(template.New(kind.String()).Option("missingkey=zero").Parse(body)),
	}
}

var templates = map[notification.Kind]messageTemplate{
	notification.KindDonationApproved: mustTemplate(notification.KindDonationApproved,
		"Your donation was approved",
		`"{{.donation_title}}" is now visible to beneficiaries.`),
	notification.KindDonationRejected: mustTemplate(notification.KindDonationRejected,
		"Your donation was rejected",
		`"{{.donation_title}}" was not accepted.{{if .reason}} Reason: {{.reason}}{{end}}`),
	notification.KindRequestApproved: mustTemplate(notification.KindRequestApproved,
		"Your request was approved",
		`Your request for "{{.donation_title}}" was approved. We will contact you about the delivery.`),
	notification.KindRequestRejected: mustTemplate(notification.KindRequestRejected,
		"Your request was not approved",
		`Your request for "{{.donation_title}}" was not approved.{{if .reason}} Reason: {{.reason}}{{end}}`),
	notification.KindDeliveryInProgress: mustTemplate(notification.KindDeliveryInProgress,
		"Your donation is on the way",
		`"{{.donation_title}}" is {{.status}}.`),
	notification.KindDeliveryCompleted: mustTemplate(notification.KindDeliveryCompleted,
		"Delivery completed",
		`"{{.donation_title}}" was delivered.`),
	notification.KindNewRequestAdmin: mustTemplate(notification.KindNewRequestAdmin,
		"New donation request",
		`A beneficiary asked for "{{.donation_title}}". Request {{.request_id}} is waiting for review.`),
	notification.KindRecyclingBatchUpdated: mustTemplate(notification.KindRecyclingBatchUpdated,
		"Recycling batch updated",
		`Batch {{.batch_code}} is now {{.status}}.`),
}

// Render builds the message for intent, addressed to email.
func Render(intent notification.Intent, email string) (Message, error) {
	tmpl, ok := templates[intent.Kind]
	if !ok {
		return Message{}, fmt.Errorf("no template for notification kind %s", intent.Kind)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, intent.Payload); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", intent.Kind, err)
	}

	return Message{
		Kind:        intent.Kind.String(),
		RecipientID: intent.Recipient.ID.String(),
		Email:       email,
		Subject:     tmpl.subject,
		Body:        body.String(),
		Payload:     intent.Payload,
		OccurredAt:  intent.OccurredAt,
	}, nil
}
