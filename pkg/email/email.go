package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// ReceiptItem is one cart line in a receipt email.
type ReceiptItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

// ReceiptEmailData carries the already-formatted receipt figures for the
// email template. Amounts arrive as display strings; this package does no
// arithmetic or rounding of its own.
type ReceiptEmailData struct {
	StoreName     string
	Address       string
	Phone         string
	GSTIN         string
	InvoiceNo     string
	Date          string
	Time          string
	Customer      string
	PaymentMethod string
	Currency      string
	Items         []ReceiptItem
	SubTotal      string
	Discount      string
	TaxableValue  string
	CGSTLabel     string
	CGST          string
	SGSTLabel     string
	SGST          string
	Total         string
}

// SendReceipt sends a rendered receipt to the customer.
func (s *EmailService) SendReceipt(toEmail string, data ReceiptEmailData) error {
	htmlContent, err := s.renderReceiptEmail(data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Your receipt %s - %s", data.InvoiceNo, data.StoreName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderReceiptEmail renders the receipt email template
func (s *EmailService) renderReceiptEmail(data ReceiptEmailData) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// receiptTemplate is the HTML template for receipt emails
const receiptTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Receipt {{.InvoiceNo}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 480px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); padding: 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 24px; font-weight: 600;">{{.StoreName}}</h1>
                            {{if .Address}}<p style="color: #e6fffa; font-size: 13px; margin: 8px 0 0 0;">{{.Address}}</p>{{end}}
                            {{if .Phone}}<p style="color: #e6fffa; font-size: 13px; margin: 4px 0 0 0;">{{.Phone}}</p>{{end}}
                            {{if .GSTIN}}<p style="color: #e6fffa; font-size: 13px; margin: 4px 0 0 0;">GSTIN: {{.GSTIN}}</p>{{end}}
                        </td>
                    </tr>

                    <!-- Invoice meta -->
                    <tr>
                        <td style="padding: 24px 30px 0 30px;">
                            <p style="color: #4a5568; font-size: 14px; margin: 0;">Invoice: <strong>{{.InvoiceNo}}</strong></p>
                            <p style="color: #4a5568; font-size: 14px; margin: 4px 0 0 0;">Date: {{.Date}} {{.Time}}</p>
                            <p style="color: #4a5568; font-size: 14px; margin: 4px 0 0 0;">Customer: {{.Customer}}</p>
                            <p style="color: #4a5568; font-size: 14px; margin: 4px 0 0 0;">Payment: {{.PaymentMethod}}</p>
                        </td>
                    </tr>

                    <!-- Items -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <th style="text-align: left; color: #718096; font-size: 12px; padding: 8px 0; border-bottom: 1px solid #e2e8f0;">Item</th>
                                    <th style="text-align: right; color: #718096; font-size: 12px; padding: 8px 0; border-bottom: 1px solid #e2e8f0;">Qty</th>
                                    <th style="text-align: right; color: #718096; font-size: 12px; padding: 8px 0; border-bottom: 1px solid #e2e8f0;">Price</th>
                                    <th style="text-align: right; color: #718096; font-size: 12px; padding: 8px 0; border-bottom: 1px solid #e2e8f0;">Total</th>
                                </tr>
                                {{range .Items}}
                                <tr>
                                    <td style="color: #1a1a2e; font-size: 14px; padding: 8px 0; border-bottom: 1px solid #f1f5f9;">{{.Name}}</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 8px 0; text-align: right; border-bottom: 1px solid #f1f5f9;">{{.Quantity}}</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 8px 0; text-align: right; border-bottom: 1px solid #f1f5f9;">{{.UnitPrice}}</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 8px 0; text-align: right; border-bottom: 1px solid #f1f5f9;">{{.Total}}</td>
                                </tr>
                                {{end}}
                            </table>
                        </td>
                    </tr>

                    <!-- Totals -->
                    <tr>
                        <td style="padding: 0 30px 24px 30px;">
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0;">Subtotal</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0; text-align: right;">{{.Currency}}{{.SubTotal}}</td>
                                </tr>
                                {{if .Discount}}
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0;">Discount</td>
                                    <td style="color: #e53e3e; font-size: 14px; padding: 4px 0; text-align: right;">-{{.Currency}}{{.Discount}}</td>
                                </tr>
                                {{end}}
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0;">Taxable value</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0; text-align: right;">{{.Currency}}{{.TaxableValue}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0;">CGST ({{.CGSTLabel}}%)</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0; text-align: right;">{{.Currency}}{{.CGST}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0;">SGST ({{.SGSTLabel}}%)</td>
                                    <td style="color: #4a5568; font-size: 14px; padding: 4px 0; text-align: right;">{{.Currency}}{{.SGST}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 700; padding: 12px 0 0 0; border-top: 2px solid #e2e8f0;">Total</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 700; padding: 12px 0 0 0; text-align: right; border-top: 2px solid #e2e8f0;">{{.Currency}}{{.Total}}</td>
                                </tr>
                            </table>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0 0 6px 0;">
                                Thank you for your purchase!
                            </p>
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                This is a computer generated receipt from {{.StoreName}}.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
