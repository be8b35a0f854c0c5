package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

const driverSNS = "sns"

// SNSPublisher is the subset of *sns.Client used here.
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes the leave request to a topic the manager subscribes to.
type SNSNotifier struct {
	Sns      SNSPublisher
	TopicArn string
	logger   *zap.Logger
}

func NewSNSNotifier(client SNSPublisher, topicArn string, logger ...*zap.Logger) *SNSNotifier {
	l := zap.L().Named("notification.sns")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.sns")
	}
	return &SNSNotifier{
		Sns:      client,
		TopicArn: topicArn,
		logger:   l,
	}
}

func (n *SNSNotifier) NotifyLeaveRequest(ctx context.Context, msg LeaveRequestMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal sns message: %w", err)
	}

	out, err := n.Sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.TopicArn),
		Subject:  aws.String(fmt.Sprintf("Leave request: %s %s to %s", msg.LeaveType, msg.StartDate, msg.EndDate)),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"leave_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(msg.LeaveType),
			},
		},
	})
	if err != nil {
		return &DeliveryError{Driver: driverSNS, Err: err}
	}

	n.logger.Debug("leave request published", zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
