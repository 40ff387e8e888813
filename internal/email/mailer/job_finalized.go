// internal/email/mailer/job_finalized.go
package mailer

import (
	"fmt"

	"github.com/openfab/printhub/internal/email"
)

// JobFinalizedTemplateData contains data for the job invoice email template
type JobFinalizedTemplateData struct {
	FirstName string
	JobTitle  string
	ShopName  string
	Total     string
	ItemCount int
	JobLink   string
}

// FormatAmount renders a minor-unit amount as a decimal string, e.g. 1050 -> "10.50".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// SendJobFinalizedEmail sends the invoice email after a job is finalized.
func SendJobFinalizedEmail(s *email.Service, to string, data JobFinalizedTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     data.ShopName,
		Subject:      fmt.Sprintf("Invoice for %s", data.JobTitle),
		TemplateName: "job_finalized",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
