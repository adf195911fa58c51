package signjob

import (
	json "encoding/json"

	"github.com/fatih/structs"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// Job is one signing request pulled from the input queue. The body is JSON;
// fields left empty fall back to the worker configuration. Timestamp and
// nonce presets exist for deterministic replay, normal jobs leave them empty.
type Job struct {
	// Signing job props
	ID              string            `json:"id"`
	Endpoint        string            `json:"endpoint"`
	RequestType     string            `json:"request_type"`
	HTTPMethod      string            `json:"http_method"`
	CallbackURL     string            `json:"callback_url"`
	TokenSecret     string            `json:"token_secret"`
	SignatureMethod string            `json:"signature_method"`
	Additional      map[string]string `json:"additional_params"`
	Timestamp       string            `json:"timestamp"`
	Nonce           string            `json:"nonce"`
	// SQS Attributes
	MessageBody   string `json:"-"`
	ReceiptHandle string `json:"-"`
}

// Init assigns Job fields from the raw message body.
func (x *Job) Init() error {
	err := json.Unmarshal([]byte(x.MessageBody), &x)
	return err
}

// Result is the signed parameter set produced for one Job.
type Result struct {
	ID         string   `json:"id"`
	Endpoint   string   `json:"endpoint"`
	HTTPMethod string   `json:"http_method"`
	Timestamp  string   `json:"timestamp"`
	Nonce      string   `json:"nonce"`
	Parameters []string `json:"parameters"`
	Header     string   `json:"header"`
	Query      string   `json:"query"`
	// SQS Attributes
	ReceiptHandle string `json:"-"`
}

// ToJdoc returns the Result as a json string.
func (x *Result) ToJdoc() (string, error) {
	jdoc, err := json.Marshal(&x)
	if err != nil {
		return "", err
	}
	doc := string(jdoc)
	return doc, err
}

// ToMap returns map[string]interface{} of Result.
func (x *Result) ToMap() map[string]interface{} {
	mapped := structs.Map(x)
	return mapped
}

// SqsMsgAttr returns the identity fields of the Result as message
// attributes. The parameter strings and assembled forms travel only in the
// message body.
func (x *Result) SqsMsgAttr() map[string]*sqs.MessageAttributeValue {
	mapped := x.ToMap()
	attrs := map[string]*sqs.MessageAttributeValue{}
	for _, key := range []string{"ID", "Endpoint", "HTTPMethod", "Timestamp", "Nonce"} {
		value, ok := mapped[key].(string)
		if !ok || value == "" {
			continue
		}
		attrs[key] = &sqs.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}
	return attrs
}

// SqsMsg returns the message to put into the output queue.
func (x *Result) SqsMsg(outputQueue string) (*sqs.SendMessageInput, error) {
	var msg *sqs.SendMessageInput
	jdoc, err := x.ToJdoc()
	if err != nil {
		return nil, err
	}
	msg = &sqs.SendMessageInput{
		QueueUrl:          &outputQueue,
		MessageAttributes: x.SqsMsgAttr(),
		MessageBody:       &jdoc,
	}
	return msg, nil
}

// SqsDelMsg removes the processed message from the input queue.
func (x *Result) SqsDelMsg(inputQueue string) *sqs.DeleteMessageInput {
	return &sqs.DeleteMessageInput{
		QueueUrl:      &inputQueue,
		ReceiptHandle: &x.ReceiptHandle,
	}
}
