// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"devforge-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService pushes new-inquiry alerts to the site owner's phone
// via Twilio. It is entirely optional: without credentials every call is
// a logged no-op.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient

	adminPhone string
	fromPhone  string
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		adminPhone: os.Getenv("ADMIN_PHONE_NUMBER"),
		fromPhone:  os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Enabled reports whether Twilio credentials and an admin phone are configured.
func (s *NotificationService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" && s.adminPhone != "" && s.fromPhone != ""
}

// StartScheduler begins the daily digest job.
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	// Every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigest)

	c.Start()
	log.Println("Contact digest scheduler started")
}

// NotifyNewContact alerts the admin about a fresh submission. Failures are
// logged and swallowed; the submission itself is already persisted.
func (s *NotificationService) NotifyNewContact(contact models.Contact) {
	if !s.Enabled() {
		return
	}
	if err := s.sendMessage(newContactMessage(contact)); err != nil {
		log.Printf("Failed to send contact notification for %s: %v", contact.ID, err)
	}
}

// SendDailyDigest summarizes the submissions of the last 24 hours.
func (s *NotificationService) SendDailyDigest() {
	if !s.Enabled() {
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	var contacts []models.Contact
	if err := s.db.Where("submitted_at >= ?", since).
		Order("submitted_at DESC").
		Find(&contacts).Error; err != nil {
		log.Printf("Failed to fetch contacts for daily digest: %v", err)
		return
	}
	if len(contacts) == 0 {
		return
	}

	if err := s.sendMessage(digestMessage(contacts)); err != nil {
		log.Printf("Failed to send daily digest: %v", err)
	}
}

func (s *NotificationService) sendMessage(body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.adminPhone)
	params.SetFrom(s.fromPhone)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Notification sent, SID: %s", *resp.Sid)
	}
	return nil
}

func newContactMessage(contact models.Contact) string {
	return fmt.Sprintf("New %s inquiry from %s (%s): %s",
		contact.InquiryType, contact.Name, contact.Email, contact.Subject)
}

func digestMessage(contacts []models.Contact) string {
	newCount := 0
	for _, contact := range contacts {
		if contact.Status == models.ContactStatusNew {
			newCount++
		}
	}
	return fmt.Sprintf("Daily digest: %d contact submissions in the last 24h, %d still unhandled",
		len(contacts), newCount)
}
