package notify

import (
	"fmt"
	"net/smtp"
	"os"
)

func sendMail(toEmail, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if from == "" || pass == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := []byte("Subject: " + subject + "\n\n" + body)
	auth := smtp.PlainAuth("", from, pass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{toEmail}, msg)
}

func sendInquiryReceived(event Event) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for your inquiry! Your booking reference is %s.\n"+
			"We will get back to you with a tailored proposal shortly.\n",
		event.Name, event.RefID)
	return sendMail(event.Email, "We received your inquiry ("+event.RefID+")", body)
}

func sendProposalLink(event Event) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour catering proposal is ready. Review the packages and "+
			"reserve your date here:\n\n%s\n\nA reservation fee of 5,000 "+
			"secures your booking.\n",
		event.Name, ProposalURL(event.RefID))
	return sendMail(event.Email, "Your catering proposal ("+event.RefID+")", body)
}

func sendPaymentReceived(event Event) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your payment details for booking %s and are "+
			"verifying them. You will be notified once your date is reserved.\n",
		event.Name, event.RefID)
	return sendMail(event.Email, "Payment received for verification ("+event.RefID+")", body)
}

func sendReservationConfirmed(event Event) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nGreat news! Your booking %s is now reserved. See you at "+
			"your event!\n",
		event.Name, event.RefID)
	return sendMail(event.Email, "Your booking is reserved ("+event.RefID+")", body)
}
