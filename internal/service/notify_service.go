package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"fleetshare/internal/entities"
)

// NotifyService alerts the fleet manager about bookings. Bookings carry no
// contact details for the requester, so everything goes to the manager
// address/number from the environment. All sends are best effort: a failed
// notification is logged and never blocks a booking.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// BookingCreated sends the new-booking email and SMS.
func (n *NotifyService) BookingCreated(booking entities.Booking, vehicle entities.Vehicle) {
	subject := fmt.Sprintf("New fleet booking: %s on %s", vehicle.Name, booking.Date)
	body := fmt.Sprintf(
		"A new vehicle booking was created.\n\n"+
			"Requester: %s\n"+
			"Vehicle: %s (plate %s)\n"+
			"Date: %s\n"+
			"Destination: %s\n"+
			"Passengers: %d\n"+
			"Purpose: %s\n",
		booking.UserName, vehicle.Name, vehicle.Plate, booking.Date,
		booking.Destination, booking.Passengers, booking.Purpose,
	)

	if err := n.SendEmail(subject, body); err != nil {
		logrus.Warnf("Booking %s was created, but the notification email failed: %v", booking.ID, err)
	}

	sms := fmt.Sprintf("FleetShare: %s booked %s for %s (%s).",
		booking.UserName, vehicle.Name, booking.Date, booking.Destination)
	if err := n.SendSMS(sms); err != nil {
		logrus.Warnf("Booking %s was created, but the notification SMS failed: %v", booking.ID, err)
	}
}

// SendEmail delivers a plain-text email to the fleet manager via SendGrid.
func (n *NotifyService) SendEmail(subject, body string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not set")
	}
	toEmail := os.Getenv("FLEET_MANAGER_EMAIL")
	if toEmail == "" {
		return fmt.Errorf("FLEET_MANAGER_EMAIL is not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "FleetShare"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail("Fleet Manager", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	logrus.Infof("Email sent to %s (subject: %s)", toEmail, subject)
	return nil
}

// SendSMS delivers a text message to the fleet manager via Twilio.
func (n *NotifyService) SendSMS(body string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	toNumber := os.Getenv("FLEET_MANAGER_PHONE")

	if accountSid == "" || authToken == "" || fromNumber == "" || toNumber == "" {
		return fmt.Errorf("Twilio credentials or FLEET_MANAGER_PHONE not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		logrus.Warnf("FLEET_MANAGER_PHONE '%s' is not in E.164 format, the SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sending SMS via Twilio: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		logrus.Infof("SMS sent to %s (sid %s)", toNumber, *resp.Sid)
	}
	return nil
}
