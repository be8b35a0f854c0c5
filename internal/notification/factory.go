package notification

import (
	"context"
	"fmt"

	"go-leave/internal/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// New builds the Notifier selected by cfg.Driver.
func New(ctx context.Context, cfg config.NotificationConfig, logger *zap.Logger) (Notifier, error) {
	switch cfg.Driver {
	case config.NotifierEmailJS:
		return NewEmailJSNotifier(EmailJSConfig{
			Endpoint:    cfg.EmailJS.Endpoint,
			ServiceID:   cfg.EmailJS.ServiceID,
			TemplateID:  cfg.EmailJS.TemplateID,
			PublicKey:   cfg.EmailJS.PublicKey,
			AccessToken: cfg.EmailJS.AccessToken,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case config.NotifierSNS:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.SNS.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.SNS.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.SNS.TopicARN, logger), nil
	case config.NotifierLog, "":
		return NewLogNotifier(logger), nil
	default:
		return nil, fmt.Errorf("unknown notification driver %q", cfg.Driver)
	}
}
