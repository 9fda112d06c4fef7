package ses

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"wanderplan/internal/config"
	"wanderplan/internal/email"
	"wanderplan/internal/port"
	"wanderplan/internal/tripplan"
)

const charsetUTF8 = "UTF-8"

type sesSender struct {
	client      *sesv2.Client
	from        string
	frontendURL string
}

// NewSESSender creates an EmailSender that delivers plan summaries through SES.
func NewSESSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	from := mail.Address{Name: cfg.FromName, Address: cfg.FromAddress}
	return &sesSender{
		client:      sesv2.NewFromConfig(awsCfg),
		from:        from.String(),
		frontendURL: cfg.FrontendURL,
	}, nil
}

func (s *sesSender) SendTripPlan(ctx context.Context, toEmail string, plan *tripplan.TripPlan) error {
	htmlBody, err := email.HTMLBody(plan, s.frontendURL)
	if err != nil {
		return fmt.Errorf("sesSender.SendTripPlan: rendering html: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{toEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(email.Subject(plan)),
				Body: &types.Body{
					Html: utf8Content(htmlBody),
					Text: utf8Content(email.TextBody(plan, s.frontendURL)),
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("category"), Value: aws.String("trip-plan")},
		},
	})
	if err != nil {
		return fmt.Errorf("sesSender.SendTripPlan: %w", err)
	}
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String(charsetUTF8)}
}
