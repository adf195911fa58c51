package signhandler

import (
	"fmt"
	"log"

	"goSignOAuth1/auth"
	"goSignOAuth1/config"
	"goSignOAuth1/signjob"
)

const (
	badSignJob      = "BAD_SIGN_JOB"
	unsupportedFlow = "UNSUPPORTED_REQUEST_TYPE"
)

// SignRequest builds, signs and finalizes the parameter set for one job.
// Job fields override the worker configuration; an incomplete request is
// logged and still signed, only malformed jobs and unsupported flows fail.
func SignRequest(job *signjob.Job, cfg *config.Config) (*signjob.Result, error) {
	requestType := job.RequestType
	if requestType == "" {
		requestType = auth.TemporaryCredentials.String()
	}
	rtype, err := auth.ParseRequestType(requestType)
	if err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}

	request, err := auth.NewRequest(rtype, job.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}

	request.SetConsumerKey(cfg.ConsumerKey)
	request.SetConsumerSecret(cfg.ConsumerSecret)

	callback := job.CallbackURL
	if callback == "" {
		callback = cfg.CallbackURL
	}
	request.SetCallbackURL(callback)

	if job.TokenSecret != "" {
		request.SetTokenSecret(job.TokenSecret)
	}

	sigMethod := job.SignatureMethod
	if sigMethod == "" {
		sigMethod = cfg.SignatureMethod
	}
	smethod, err := auth.ParseSignatureMethod(sigMethod)
	if err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}
	if err := request.SetSignatureMethod(smethod); err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}

	httpMethod := job.HTTPMethod
	if httpMethod == "" {
		httpMethod = cfg.HTTPMethod
	}
	hmethod, err := auth.ParseHTTPMethod(httpMethod)
	if err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}
	if err := request.SetHTTPMethod(hmethod); err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}

	if len(job.Additional) > 0 {
		request.SetAdditionalParameters(job.Additional)
	}

	// nonce mode first, job presets win
	noncer, err := auth.ParseNoncer(cfg.NonceMode)
	if err != nil {
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}
	if noncer != nil {
		request.SetNonce(noncer.Nonce())
	}
	if job.Timestamp != "" {
		request.SetTimestamp(job.Timestamp)
		if job.Nonce == "" && noncer == nil {
			request.SetNonce(auth.DerivedNonce(job.Timestamp))
		}
	}
	if job.Nonce != "" {
		request.SetNonce(job.Nonce)
	}

	if verr := request.Validate(); verr != nil {
		if verr == auth.ErrUnsupportedRequestType {
			return nil, fmt.Errorf("sign job error: %s, %v", unsupportedFlow, verr)
		}
		log.Printf("Job %s incomplete, signing anyway: %v", job.ID, verr)
	}

	params, err := request.RequestParameters()
	if err != nil {
		if err == auth.ErrUnsupportedRequestType {
			return nil, fmt.Errorf("sign job error: %s, %v", unsupportedFlow, err)
		}
		return nil, fmt.Errorf("sign job error: %s, %v", badSignJob, err)
	}

	result := &signjob.Result{
		ID:            job.ID,
		Endpoint:      request.Endpoint(),
		HTTPMethod:    request.Method().String(),
		Timestamp:     request.Timestamp(),
		Nonce:         request.Nonce(),
		Parameters:    params,
		Header:        auth.AuthorizationHeader(params, cfg.Realm),
		Query:         auth.QueryString(params),
		ReceiptHandle: job.ReceiptHandle,
	}
	return result, nil
}
