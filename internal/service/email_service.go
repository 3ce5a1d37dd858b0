package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends achievement emails via Amazon SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	enabled   bool
}

// NewEmailService creates a new email service. When fromEmail is empty
// the service is disabled and every send becomes a logged no-op.
func NewEmailService(awsRegion, fromEmail string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_ADDRESS not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendTitleEarnedEmail congratulates a player on reaching a new title
func (s *EmailService) SendTitleEarnedEmail(ctx context.Context, toEmail, displayName, title string) error {
	if !s.enabled || toEmail == "" {
		log.Printf("Skipping email send: title notification for %q", displayName)
		return nil
	}

	subject := fmt.Sprintf("You earned a new title: %s!", title)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #7CB342;">Congratulations, %s!</h1>
		<p>Your word adventures have paid off. You are now a</p>
		<p style="font-size: 24px; font-weight: bold; text-align: center;">%s</p>
		<p>Keep playing to collect more stars and reach the next title!</p>
		<p style="font-size: 12px; color: #666;">This is an automated email from WordQuest. Please do not reply.</p>
	</div>
</body>
</html>
`, displayName, title)

	textBody := fmt.Sprintf(`Congratulations, %s!

Your word adventures have paid off. You are now a %s.

Keep playing to collect more stars and reach the next title!

---
This is an automated email from WordQuest. Please do not reply.
`, displayName, title)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
