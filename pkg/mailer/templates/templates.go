package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
)

// Small HTML bodies for the notification worker. Data keys come from
// mailer.EmailJob.Data; publishers must supply every key a body references.
var bodies = map[string]string{
	"appointment_booked": `
<p>Hello {{.PatientName}},</p>
<p>Your appointment with {{.DoctorName}} is confirmed for
<strong>{{.StartsAt}}</strong> until {{.EndsAt}}.</p>
<p>MediCore Clinic</p>`,

	"appointment_cancelled": `
<p>Hello {{.PatientName}},</p>
<p>Your appointment with {{.DoctorName}} on <strong>{{.StartsAt}}</strong> has
been cancelled. Contact the reception desk to rebook.</p>
<p>MediCore Clinic</p>`,

	"invoice_receipt": `
<p>Hello {{.PatientName}},</p>
<p>We received your payment of <strong>{{.Total}}</strong> for invoice
{{.InvoiceID}}. Thank you.</p>
<p>MediCore Clinic</p>`,
}

var subjects = map[string]string{
	"appointment_booked":    "Your appointment is confirmed",
	"appointment_cancelled": "Your appointment was cancelled",
	"invoice_receipt":       "Payment received",
}

var parsed = map[string]*htmpl.Template{}

func init() {
	for name, body := range bodies {
		parsed[name] = htmpl.Must(htmpl.New(name).Parse(body))
	}
}

// Render renders the named template with data and returns subject and HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	t, ok := parsed[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}
