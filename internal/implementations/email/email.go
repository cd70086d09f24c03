package email

import (
	"context"
	"encoding/json"
	"wellness/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender           string
	reminderTemplate string
}

func NewEmailSender(awsConfig aws.Config, sender string, reminderTemplate string) *EmailSender {
	return &EmailSender{
		ses:              ses.NewFromConfig(awsConfig),
		sender:           sender,
		reminderTemplate: reminderTemplate,
	}
}

func (s *EmailSender) Email(ctx context.Context, address string, n notification.Notification) error {
	templateParamsBytes, err := json.Marshal(
		reminderTemplateParams{
			Title:   n.Title,
			Message: n.Message,
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{address},
			},
			Template:     &s.reminderTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type reminderTemplateParams struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
