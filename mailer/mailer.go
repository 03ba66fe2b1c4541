package mailer

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/faseops/membership/scheduled-tasks/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <membership@fase.network>
	MembershipEmail string `json:"membership_email"`
	MembershipName  string `json:"membership_name"`
	// <noreply@fase.network>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`

	// Dynamic templates IDs
	DynamicTemplates DynamicTemplates `json:"dynamic_templates"`
}

type DynamicTemplates struct {
	VerificationCode       string `json:"verification_code"`
	NewInvoiceNotification string `json:"new_invoice_notification"`
	RegistrationConfirmed  string `json:"registration_confirmed"`
}

const (
	CategoryVerification  string = "verification"
	CategoryInvoices      string = "invoices"
	CategoryRegistrations string = "registrations"
)

// Config : Sendgrid configuration
var Config SendGridConfig

var configOnce sync.Once

// loadConfig fetches the SendGrid configuration on first use, so packages
// can import mailer types without touching secret manager.
func loadConfig() {
	ctx := context.Background()

	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err != nil {
		log.Fatalln(err)
	}

	err = json.Unmarshal(secretData, &Config)
	if err != nil {
		log.Fatalln(err)
	}
}

// VerificationCodeNotification : verification code template data
type VerificationCodeNotification struct {
	Email     string
	Code      string
	ExpiresIn string
}

// InvoiceNotification : new invoice template data
type InvoiceNotification struct {
	Email            string
	OrganizationName string
	InvoiceNumber    string
	TotalAmount      string
	PDFURL           string
}

// RegistrationConfirmedNotification : registration confirmed template data
type RegistrationConfirmedNotification struct {
	Email            string
	FirstName        string
	OrganizationName string
	RegistrationID   string
	AttendeeCount    int
}

//go:generate mockery --name ISender --output ./mocks
type ISender interface {
	SendVerificationCode(data *VerificationCodeNotification) error
	SendInvoiceNotification(data *InvoiceNotification) error
	SendRegistrationConfirmed(data *RegistrationConfirmedNotification) error
}

// Sender dispatches transactional email through SendGrid dynamic templates.
type Sender struct{}

func NewSender() *Sender {
	configOnce.Do(loadConfig)

	return &Sender{}
}

func (s *Sender) SendVerificationCode(data *VerificationCodeNotification) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(Config.DynamicTemplates.VerificationCode)
	m.SetFrom(mail.NewEmail(Config.NoReplyName, Config.NoReplyEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", data.Email))
	personalization.SetDynamicTemplateData("code", data.Code)
	personalization.SetDynamicTemplateData("expires_in", data.ExpiresIn)

	m.AddPersonalizations(personalization)
	m.AddCategories(CategoryVerification)

	return send(m)
}

func (s *Sender) SendInvoiceNotification(data *InvoiceNotification) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(Config.DynamicTemplates.NewInvoiceNotification)
	m.SetFrom(mail.NewEmail(Config.MembershipName, Config.MembershipEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(data.OrganizationName, data.Email))
	personalization.SetDynamicTemplateData("organization_name", data.OrganizationName)
	personalization.SetDynamicTemplateData("invoice_number", data.InvoiceNumber)
	personalization.SetDynamicTemplateData("total_amount", data.TotalAmount)
	personalization.SetDynamicTemplateData("pdf_url", data.PDFURL)

	m.AddPersonalizations(personalization)
	m.AddCategories(CategoryInvoices)

	return send(m)
}

func (s *Sender) SendRegistrationConfirmed(data *RegistrationConfirmedNotification) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(Config.DynamicTemplates.RegistrationConfirmed)
	m.SetFrom(mail.NewEmail(Config.MembershipName, Config.MembershipEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(data.FirstName, data.Email))
	personalization.SetDynamicTemplateData("first_name", data.FirstName)
	personalization.SetDynamicTemplateData("organization_name", data.OrganizationName)
	personalization.SetDynamicTemplateData("registration_id", data.RegistrationID)
	personalization.SetDynamicTemplateData("attendee_count", data.AttendeeCount)

	m.AddPersonalizations(personalization)
	m.AddCategories(CategoryRegistrations)

	return send(m)
}

func send(m *mail.SGMailV3) error {
	request := sendgrid.GetRequest(Config.APIKey, Config.MailSendPath, Config.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetry(request)
	if err != nil {
		log.Println(err)
		return err
	}

	log.Println(response.StatusCode)

	return nil
}
