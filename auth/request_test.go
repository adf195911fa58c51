package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestDefaults(t *testing.T) {
	request, err := NewRequest(TemporaryCredentials, "https://example.com/request_token")
	assert.Nil(t, err)
	assert.Equal(t, POST, request.Method())
	assert.Equal(t, HMACSHA1, request.signatureMethod)
	assert.Equal(t, defaultOauthVersion, request.version)
	assert.NotEmpty(t, request.Timestamp())
	assert.Equal(t, DerivedNonce(request.Timestamp()), request.Nonce())
}

func TestNewRequestInvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "not a url", "/relative/path", "example.com/no-scheme", "https://"} {
		_, err := NewRequest(TemporaryCredentials, endpoint)
		assert.Equal(t, ErrInvalidEndpoint, err, "endpoint %q", endpoint)
	}
}

func TestNewRequestInvalidType(t *testing.T) {
	_, err := NewRequest(RequestType(42), "https://example.com/request_token")
	assert.Equal(t, ErrInvalidRequestType, err)
	_, err = NewRequest(RequestType(-1), "https://example.com/request_token")
	assert.Equal(t, ErrInvalidRequestType, err)
}

func TestRequestParametersRepeatable(t *testing.T) {
	request := newReferenceRequest(t)
	first, err := request.RequestParameters()
	assert.Nil(t, err)
	second, err := request.RequestParameters()
	assert.Nil(t, err)
	assert.Equal(t, first, second)

	count := 0
	for _, param := range second {
		if strings.HasPrefix(param, "oauth_signature=") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSignatureNotInBaseString(t *testing.T) {
	request := newReferenceRequest(t)
	_, err := request.RequestParameters()
	assert.Nil(t, err)
	// a finalized request still produces a signature free base string
	baseString, err := request.BaseString()
	assert.Nil(t, err)
	assert.NotContains(t, baseString, "oauth_signature%3D")
	assert.Equal(t, referenceBaseString, baseString)
}

func TestBaseStringStripsQuery(t *testing.T) {
	request, err := NewRequest(TemporaryCredentials, "https://example.com/request_token?script=12&deploy=1")
	assert.Nil(t, err)
	request.SetConsumerKey("ck")
	request.SetCallbackURL("https://example.com/cb")
	request.SetTimestamp("1300000000")
	request.SetNonce("abc123")
	baseString, err := request.BaseString()
	assert.Nil(t, err)
	assert.Equal(t, referenceBaseString, baseString)
	// the endpoint getter keeps the query for the transport layer
	assert.Equal(t, "https://example.com/request_token?script=12&deploy=1", request.Endpoint())
}

func TestBaseStringLowercasesHost(t *testing.T) {
	request, err := NewRequest(TemporaryCredentials, "HTTPS://Example.COM/request_token")
	assert.Nil(t, err)
	request.SetConsumerKey("ck")
	request.SetConsumerSecret("cs")
	request.SetCallbackURL("https://example.com/cb")
	request.SetTimestamp("1300000000")
	request.SetNonce("abc123")
	baseString, err := request.BaseString()
	assert.Nil(t, err)
	assert.Equal(t, referenceBaseString, baseString)
	assert.Equal(t, "oauth_signature="+referenceSignature, lastParam(t, request))

	// only the host casing is normalized, an explicit port stays
	request, err = NewRequest(TemporaryCredentials, "https://Example.COM:8080/request_token")
	assert.Nil(t, err)
	baseString, err = request.BaseString()
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(baseString, "POST&https%3A%2F%2Fexample.com%3A8080%2Frequest_token&"))
}

func TestUnsupportedRequestTypes(t *testing.T) {
	for _, rtype := range []RequestType{ResourceOwnerAuth, AccessToken} {
		request, err := NewRequest(rtype, "https://example.com/token")
		assert.Nil(t, err)
		request.SetConsumerKey("ck")
		request.SetConsumerSecret("cs")
		_, err = request.BaseString()
		assert.Equal(t, ErrUnsupportedRequestType, err)
		_, err = request.RequestParameters()
		assert.Equal(t, ErrUnsupportedRequestType, err)
		assert.Equal(t, ErrUnsupportedRequestType, request.Validate())
	}
}

func TestValidate(t *testing.T) {
	request := newReferenceRequest(t)
	assert.Nil(t, request.Validate())

	// the consumer secret is not part of the parameter set and not checked
	request.SetConsumerSecret("")
	assert.Nil(t, request.Validate())

	request.SetCallbackURL("")
	err := request.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oauth_callback")

	request = newReferenceRequest(t)
	request.SetConsumerKey("")
	request.SetNonce("")
	err = request.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oauth_consumer_key")
	assert.Contains(t, err.Error(), "oauth_nonce")
}

func TestValidateDoesNotBlockSigning(t *testing.T) {
	request, err := NewRequest(TemporaryCredentials, "https://example.com/request_token")
	assert.Nil(t, err)
	assert.Error(t, request.Validate())
	params, perr := request.RequestParameters()
	assert.Nil(t, perr)
	assert.Equal(t, "oauth_callback=", params[0])
}

func TestSetterRangeChecks(t *testing.T) {
	request := newReferenceRequest(t)
	assert.Equal(t, ErrInvalidSignatureMethod, request.SetSignatureMethod(SignatureMethod(9)))
	assert.Equal(t, ErrInvalidHTTPMethod, request.SetHTTPMethod(HTTPMethod(9)))
	assert.Nil(t, request.SetSignatureMethod(Plaintext))
	assert.Nil(t, request.SetHTTPMethod(GET))
}

func TestSignatureMethodIsMetadata(t *testing.T) {
	request := newReferenceRequest(t)
	assert.Nil(t, request.SetSignatureMethod(Plaintext))
	params, err := request.RequestParameters()
	assert.Nil(t, err)
	assert.Equal(t, "oauth_signature_method=PLAINTEXT", params[3])
	// signing stays HMAC-SHA1 over the changed base string
	baseString, err := request.BaseString()
	assert.Nil(t, err)
	assert.Equal(t, "oauth_signature="+Sign(baseString, "cs", ""), params[6])
}

func lastParam(t *testing.T, request *Request) string {
	params, err := request.RequestParameters()
	assert.Nil(t, err)
	return params[len(params)-1]
}

func TestSignatureSensitivity(t *testing.T) {
	reference := lastParam(t, newReferenceRequest(t))

	request := newReferenceRequest(t)
	request.SetConsumerKey("other")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetConsumerSecret("other")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetTokenSecret("ts")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetTimestamp("1300000001")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetNonce("abc124")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetCallbackURL("https://example.com/other")
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	request.SetAdditionalParameters(map[string]string{"scope": "read"})
	assert.NotEqual(t, reference, lastParam(t, request))

	request = newReferenceRequest(t)
	assert.Nil(t, request.SetHTTPMethod(GET))
	assert.NotEqual(t, reference, lastParam(t, request))

	// the endpoint is fixed at construction, so changing it means a new request
	request, err := NewRequest(TemporaryCredentials, "https://example.com/other_token")
	assert.Nil(t, err)
	request.SetConsumerKey("ck")
	request.SetConsumerSecret("cs")
	request.SetCallbackURL("https://example.com/cb")
	request.SetTimestamp("1300000000")
	request.SetNonce("abc123")
	assert.NotEqual(t, reference, lastParam(t, request))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "HMAC_SHA1", HMACSHA1.String())
	assert.Equal(t, "PLAINTEXT", Plaintext.String())
	assert.Equal(t, "RSA_SHA1", RSASHA1.String())
	assert.Equal(t, "", SignatureMethod(9).String())
	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "POST", POST.String())
	assert.Equal(t, "temporary_credentials", TemporaryCredentials.String())
	assert.Equal(t, "resource_owner_auth", ResourceOwnerAuth.String())
	assert.Equal(t, "access_token", AccessToken.String())
}

func TestParseHelpers(t *testing.T) {
	rtype, err := ParseRequestType("temporary_credentials")
	assert.Nil(t, err)
	assert.Equal(t, TemporaryCredentials, rtype)
	_, err = ParseRequestType("bearer")
	assert.Error(t, err)

	method, err := ParseHTTPMethod("post")
	assert.Nil(t, err)
	assert.Equal(t, POST, method)
	_, err = ParseHTTPMethod("PUT")
	assert.Error(t, err)

	smethod, err := ParseSignatureMethod("RSA_SHA1")
	assert.Nil(t, err)
	assert.Equal(t, RSASHA1, smethod)
	// the identifier uses an underscore, not the RFC 5849 hyphen
	_, err = ParseSignatureMethod("HMAC-SHA1")
	assert.Error(t, err)
}
