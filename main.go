package main

import (
	"context"
	"goSignOAuth1/config"
	"goSignOAuth1/signhandler"
	"goSignOAuth1/signjob"
	S "goSignOAuth1/sqssrv"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// Handle handles AWS SQS messages in a Lambda. Each record body is one
// signing job; the signed parameter set goes to the output queue and the
// consumed job is deleted.
// Required environment variables:
// INPUT_QUEUE - SQS url to pull signing jobs.
// OUTPUT_QUEUE - SQS url for signed parameter sets.
// OAUTH_CONSUMER_KEY - consumer key presented to the provider.
// OAUTH_CONSUMER_SECRET - consumer secret half of the signing key.
// Optional:
// OAUTH_CALLBACK_URL - default callback for jobs without one.
// OAUTH_SIGNATURE_METHOD - HMAC_SHA1 (default), PLAINTEXT or RSA_SHA1.
// OAUTH_HTTP_METHOD - GET or POST (default).
// OAUTH_NONCE_MODE - derived (default), base64, hex or uuid.
// OAUTH_REALM - realm for assembled Authorization headers.
// AWS_REGION - SQS region, us-east-1 when unset.
func Handle(ctx context.Context, event events.SQSEvent) (string, error) {
	var failed error
	var msgID string

	cfg, cfgerr := config.Load()
	if cfgerr != nil {
		return "", cfgerr
	}

	for _, sqsmsg := range event.Records {
		msgID = sqsmsg.MessageId
		job := signjob.Job{
			MessageBody:   sqsmsg.Body,
			ReceiptHandle: sqsmsg.ReceiptHandle,
		}

		err := job.Init()

		if err != nil {
			failed = err
			break
		}

		signed, sgerr := signhandler.SignRequest(&job, cfg)

		if sgerr != nil {
			failed = sgerr
			break
		}

		srv := S.SignedToQueue{}
		_, srverr := srv.GetSrv(cfg.AWSRegion)

		if srverr != nil {
			failed = srverr
			break
		}

		toQueueMsg, tqerr := signed.SqsMsg(cfg.OutputQueue)

		if tqerr != nil {
			failed = tqerr
			break
		}

		delop, sederr := srv.Send(toQueueMsg, signed.SqsDelMsg(cfg.InputQueue))

		if sederr != nil {
			failed = sederr
			break
		}

		log.Printf("Signed %s and deleted %s Successfully!", msgID, delop.String())
	}
	return msgID, failed
}

func main() {
	lambda.Start(Handle)
}
