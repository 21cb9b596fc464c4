package service

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/domain"
)

var emailTemplates = template.Must(template.New("emails").Parse(`
{{define "welcome_tenant"}}<p>Hello {{.Name}},</p>
<p>An account has been created for you on BHMS.</p>
<p>Email: <b>{{.Email}}</b><br>Temporary password: <b>{{.Password}}</b></p>
<p>Please sign in at <a href="{{.URL}}">{{.URL}}</a> and change your password.</p>{{end}}

{{define "password_reset"}}<p>Hello {{.Name}},</p>
<p>Use the link below to reset your password. It expires in {{.TTL}}.</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<p>If you did not ask for this, ignore this email.</p>{{end}}

{{define "invoice_overdue"}}<p>Hello {{.Name}},</p>
<p>Your invoice for {{.Month}} was due on {{.DueDate}} and is now overdue.</p>
<p>Outstanding amount: <b>{{.Amount}}</b></p>{{end}}

{{define "invoice_reminder"}}<p>Hello {{.Name}},</p>
<p>Your invoice for {{.Month}} is due on {{.DueDate}}.</p>
<p>Outstanding amount: <b>{{.Amount}}</b></p>{{end}}

{{define "payment_receipt"}}<p>Hello {{.Name}},</p>
<p>We received {{.Amount}} for your invoice of {{.Month}}. Thank you.</p>
<p>Remaining balance: <b>{{.Balance}}</b></p>{{end}}
`))

type emailData struct {
	Name     string
	Email    string
	Password string
	URL      string
	TTL      string
	Month    string
	DueDate  string
	Amount   string
	Balance  string
}

func renderEmail(to, subject, tmpl string, data emailData) (*domain.Email, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return nil, err
	}
	return &domain.Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: buf.String(),
	}, nil
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
