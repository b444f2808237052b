package notify

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var digestTmpl = template.Must(template.New("digest").Parse(
	`Daily lead quota report{{with .Date}} for {{.}}{{end}}

{{range .Alerts}}- {{.RepName}} (#{{.RepID}}): {{.CurrentLeads}}/{{.RequiredLeads}} leads, short by {{.Deficit}}
{{else}}All sales reps met the daily quota.
{{end}}
Run: {{.RunID}}
`))

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotifier отправляет дайджест по SMTP.
type MailNotifier struct {
	sender mailSender
	from   string
	to     []string
}

// NewMailNotifier создаёт отправителя через gomail.Dialer.
func NewMailNotifier(host string, port int, user, password, from string, to []string) *MailNotifier {
	return &MailNotifier{
		sender: gomail.NewDialer(host, port, user, password),
		from:   from,
		to:     to,
	}
}

func (n *MailNotifier) NotifyQuota(_ context.Context, report QuotaReport) error {
	if len(report.Alerts) == 0 {
		return nil
	}

	data := struct {
		QuotaReport
		Date string
	}{QuotaReport: report, Date: report.Alerts[0].Date}

	var body bytes.Buffer
	if err := digestTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render quota digest: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", fmt.Sprintf("Lead quota: %d sales reps below target", len(report.Alerts)))
	m.SetBody("text/plain", body.String())

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send quota digest: %w", err)
	}
	return nil
}
