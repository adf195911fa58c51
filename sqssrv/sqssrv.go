package sqssrv

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// SignedToQueue wraps the sqs service for moving signed parameter sets.
type SignedToQueue struct {
	srv *sqs.SQS
}

// GetSrv returns sqs for the given region.
func (c *SignedToQueue) GetSrv(region string) (*SignedToQueue, error) {
	awsSession, err := session.NewSession(&aws.Config{
		Region: aws.String(region)},
	)
	if err != nil {
		return c, err
	}
	c.srv = sqs.New(awsSession)
	return c, nil
}

// Send sends the sqs message and removes the consumed job from its queue.
func (c *SignedToQueue) Send(msg *sqs.SendMessageInput, delmsg *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	_, serr := c.srv.SendMessage(msg)
	if serr != nil {
		return nil, serr
	}
	deloutput, derr := c.srv.DeleteMessage(delmsg)
	if derr != nil {
		return nil, derr
	}
	return deloutput, nil
}
