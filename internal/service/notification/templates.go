package notification

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// ErrUnknownEvent is returned for an event tag with no template.
var ErrUnknownEvent = errors.New("unknown notification event")

type messageTemplate struct {
	subject string
	body    *template.Template
}

var funcs = template.FuncMap{
	"date": func(v any) string {
		switch t := v.(type) {
		case interface{ Format(string) string }:
			return t.Format("January 2, 2006")
		default:
			return ""
		}
	},
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text))
}

// templates is the fixed event -> message table. Bodies see a
// domain.NotificationPayload.
var templates = map[domain.NotificationEvent]messageTemplate{
	domain.EventClaimSubmitted: {
		subject: "New Claim Submitted",
		body: mustTemplate("claim_submitted", `A new claim has been submitted for your policy.
Claim Number: {{.ClaimNumber}}
{{- with .ClaimAmount}}
Amount: ${{.}}{{end}}
Status: {{.ClaimStatus}}

We will review your claim and update you on its status.
`),
	},
	domain.EventClaimStatusUpdated: {
		subject: "Claim Status Update",
		body: mustTemplate("claim_status_updated", `Your claim status has been updated.
Claim Number: {{.ClaimNumber}}
New Status: {{.ClaimStatus}}
{{- with .AdjustorNotes}}
Adjustor Notes: {{.}}{{end}}
{{- with .ApprovedAmount}}
Approved Amount: ${{.}}{{end}}
`),
	},
	domain.EventPolicyExpiring: {
		subject: "Policy Expiration Notice",
		body: mustTemplate("policy_expiring", `Your flood insurance policy is expiring soon.
Policy Number: {{.PolicyNumber}}
{{- with .EndDate}}
Expiration Date: {{date .}}{{end}}

Please renew your policy to maintain continuous coverage.
`),
	},
	domain.EventPasswordReset: {
		subject: "Password Reset Request",
		body: mustTemplate("password_reset", `A password reset was requested for your account.
Reset Token: {{.ResetToken}}
{{- with .ExpiresIn}}
The token expires in {{.}}.{{end}}

If you did not request a reset, you can ignore this message.
`),
	},
}

// IsKnownEvent reports whether event has a template.
func IsKnownEvent(event domain.NotificationEvent) bool {
	_, ok := templates[event]
	return ok
}

// Render turns an outbox record into a message for the transport.
func Render(n domain.Notification) (domain.Message, error) {
	tmpl, ok := templates[n.Event]
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: %q", ErrUnknownEvent, n.Event)
	}

	var body strings.Builder
	if err := tmpl.body.Execute(&body, n.Payload); err != nil {
		return domain.Message{}, fmt.Errorf("render %s: %w", n.Event, err)
	}

	return domain.Message{
		Recipient: n.Recipient,
		Subject:   tmpl.subject,
		Body:      body.String(),
	}, nil
}
