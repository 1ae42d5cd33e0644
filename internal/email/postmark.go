package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	SenderEmail  string
	ReplyTo      string
}

// PostmarkClient sends messages as Postmark templated emails, using
// Message.Template as the template alias.
type PostmarkClient struct {
	client *postmark.Client
	cfg    PostmarkConfig
}

func NewPostmarkClient(cfg PostmarkConfig) (*PostmarkClient, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	return &PostmarkClient{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		cfg:    cfg,
	}, nil
}

func (c *PostmarkClient) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.To == "" {
		return errors.Join(ErrInvalidMessage, errors.New("recipient is required"))
	}

	model := make(map[string]interface{}, len(msg.Params))
	for k, v := range msg.Params {
		model[k] = v
	}

	resp, err := c.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateAlias: msg.Template,
		TemplateModel: model,
		From:          c.cfg.SenderEmail,
		To:            msg.To,
		ReplyTo:       c.cfg.ReplyTo,
		Tag:           msg.Template,
		TrackOpens:    true,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
