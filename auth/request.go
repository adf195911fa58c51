package auth

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	authorizationPrefix       = "OAuth " // trailing space is intentional
	oauthConsumerKeyParam     = "oauth_consumer_key"
	oauthNonceParam           = "oauth_nonce"
	oauthSignatureParam       = "oauth_signature"
	oauthSignatureMethodParam = "oauth_signature_method"
	oauthTimestampParam       = "oauth_timestamp"
	oauthVersionParam         = "oauth_version"
	oauthCallbackParam        = "oauth_callback"
	defaultOauthVersion       = "1.0"
	realmParam                = "realm"
)

var (
	// ErrInvalidRequestType is returned when a request type is outside the
	// known range.
	ErrInvalidRequestType = errors.New("oauth1: invalid request type")
	// ErrInvalidEndpoint is returned when an endpoint URL is empty or does
	// not parse as an absolute URL.
	ErrInvalidEndpoint = errors.New("oauth1: invalid endpoint URL")
	// ErrUnsupportedRequestType is returned for recognized request types
	// whose flows are not implemented. Only temporary credential requests
	// can be prepared and signed.
	ErrUnsupportedRequestType = errors.New("oauth1: unsupported request type")
	// ErrInvalidSignatureMethod is returned when a signature method is
	// outside the known range.
	ErrInvalidSignatureMethod = errors.New("oauth1: invalid signature method")
	// ErrInvalidHTTPMethod is returned when an HTTP method is outside the
	// known range.
	ErrInvalidHTTPMethod = errors.New("oauth1: invalid HTTP method")
)

// RequestType identifies which OAuth1 flow a request belongs to.
type RequestType int

const (
	// TemporaryCredentials is the initial request token flow, RFC 5849 2.1.
	TemporaryCredentials RequestType = iota
	// ResourceOwnerAuth is the resource owner authorization flow, RFC 5849
	// 2.2. Recognized but not implemented.
	ResourceOwnerAuth
	// AccessToken is the token credential flow, RFC 5849 2.3. Recognized but
	// not implemented.
	AccessToken
)

func (t RequestType) String() string {
	switch t {
	case TemporaryCredentials:
		return "temporary_credentials"
	case ResourceOwnerAuth:
		return "resource_owner_auth"
	case AccessToken:
		return "access_token"
	}
	return ""
}

// ParseRequestType maps a request type name to its RequestType.
func ParseRequestType(s string) (RequestType, error) {
	switch s {
	case "temporary_credentials":
		return TemporaryCredentials, nil
	case "resource_owner_auth":
		return ResourceOwnerAuth, nil
	case "access_token":
		return AccessToken, nil
	}
	return 0, fmt.Errorf("oauth1: unknown request type %q", s)
}

// SignatureMethod identifies the oauth_signature_method parameter value.
// The identifier is carried verbatim into the signed parameter set, but
// signing itself is always HMAC-SHA1 regardless of the selected method.
type SignatureMethod int

const (
	// HMACSHA1 is the default signature method.
	HMACSHA1 SignatureMethod = iota
	// Plaintext is carried as an identifier only.
	Plaintext
	// RSASHA1 is carried as an identifier only.
	RSASHA1
)

func (m SignatureMethod) String() string {
	switch m {
	case HMACSHA1:
		return "HMAC_SHA1"
	case Plaintext:
		return "PLAINTEXT"
	case RSASHA1:
		return "RSA_SHA1"
	}
	return ""
}

// ParseSignatureMethod maps a signature method name to its SignatureMethod.
func ParseSignatureMethod(s string) (SignatureMethod, error) {
	switch s {
	case "HMAC_SHA1":
		return HMACSHA1, nil
	case "PLAINTEXT":
		return Plaintext, nil
	case "RSA_SHA1":
		return RSASHA1, nil
	}
	return 0, fmt.Errorf("oauth1: unknown signature method %q", s)
}

// HTTPMethod is the request method carried into the signature base string.
type HTTPMethod int

const (
	// GET HTTP method.
	GET HTTPMethod = iota
	// POST HTTP method.
	POST
)

func (m HTTPMethod) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	}
	return ""
}

// ParseHTTPMethod maps an HTTP method name to its HTTPMethod.
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	switch strings.ToUpper(s) {
	case "GET":
		return GET, nil
	case "POST":
		return POST, nil
	}
	return 0, fmt.Errorf("oauth1: unknown HTTP method %q", s)
}

// Request assembles and signs the OAuth1 protocol parameters for a single
// request to a provider. It owns the credentials, the endpoint, the cached
// timestamp and nonce, and the working parameter list; it never performs the
// HTTP exchange itself.
//
// The timestamp is the Unix epoch seconds at construction and the nonce is
// derived from it, so every finalization of the same Request signs the same
// parameter set. SetTimestamp and SetNonce override the cached values.
type Request struct {
	requestType     RequestType
	endpoint        *url.URL
	httpMethod      HTTPMethod
	signatureMethod SignatureMethod
	consumerKey     string
	consumerSecret  string
	tokenSecret     string
	callbackURL     string
	version         string
	additional      map[string]string
	timestamp       string
	nonce           string
	params          Params
}

// NewRequest returns a Request for the given flow and endpoint URL with the
// defaults POST, HMAC_SHA1 and protocol version 1.0. The endpoint must parse
// as an absolute URL.
func NewRequest(requestType RequestType, endpoint string) (*Request, error) {
	if requestType < TemporaryCredentials || requestType > AccessToken {
		return nil, ErrInvalidRequestType
	}
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, ErrInvalidEndpoint
	}
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	return &Request{
		requestType:     requestType,
		endpoint:        u,
		httpMethod:      POST,
		signatureMethod: HMACSHA1,
		version:         defaultOauthVersion,
		timestamp:       timestamp,
		nonce:           DerivedNonce(timestamp),
	}, nil
}

// SetConsumerKey sets the oauth_consumer_key value.
func (r *Request) SetConsumerKey(consumerKey string) {
	r.consumerKey = consumerKey
}

// SetConsumerSecret sets the consumer secret used as the first half of the
// signing key. The secret never appears in the parameter set.
func (r *Request) SetConsumerSecret(consumerSecret string) {
	r.consumerSecret = consumerSecret
}

// SetTokenSecret sets the token secret used as the second half of the
// signing key. Temporary credential requests leave it empty.
func (r *Request) SetTokenSecret(tokenSecret string) {
	r.tokenSecret = tokenSecret
}

// SetCallbackURL sets the callback the provider redirects to. The value is
// stored raw and percent encoded when the parameters are collected.
func (r *Request) SetCallbackURL(callbackURL string) {
	r.callbackURL = callbackURL
}

// SetSignatureMethod selects the oauth_signature_method identifier.
func (r *Request) SetSignatureMethod(method SignatureMethod) error {
	if method < HMACSHA1 || method > RSASHA1 {
		return ErrInvalidSignatureMethod
	}
	r.signatureMethod = method
	return nil
}

// SetHTTPMethod selects the request method for the signature base string.
func (r *Request) SetHTTPMethod(method HTTPMethod) error {
	if method < GET || method > POST {
		return ErrInvalidHTTPMethod
	}
	r.httpMethod = method
	return nil
}

// SetAdditionalParameters sets extra request parameters signed along with
// the protocol parameters. The map is copied.
func (r *Request) SetAdditionalParameters(params map[string]string) {
	additional := make(map[string]string, len(params))
	for key, value := range params {
		additional[key] = value
	}
	r.additional = additional
}

// SetTimestamp overrides the cached oauth_timestamp value.
func (r *Request) SetTimestamp(timestamp string) {
	r.timestamp = timestamp
}

// SetNonce overrides the cached oauth_nonce value.
func (r *Request) SetNonce(nonce string) {
	r.nonce = nonce
}

// Timestamp returns the cached oauth_timestamp value.
func (r *Request) Timestamp() string {
	return r.timestamp
}

// Nonce returns the cached oauth_nonce value.
func (r *Request) Nonce() string {
	return r.nonce
}

// Endpoint returns the endpoint URL as given, query included.
func (r *Request) Endpoint() string {
	return r.endpoint.String()
}

// Method returns the selected HTTP method.
func (r *Request) Method() HTTPMethod {
	return r.httpMethod
}

// prepare rebuilds the working parameter list. Protocol parameters come
// first in a fixed order, the callback URL percent encoded at collection,
// then the additional parameters in ascending key order. The signature is
// never collected here.
func (r *Request) prepare() error {
	if r.requestType != TemporaryCredentials {
		return ErrUnsupportedRequestType
	}
	r.params = r.params[:0]
	r.params = append(r.params,
		Pair{oauthCallbackParam, PercentEncode(r.callbackURL)},
		Pair{oauthSignatureMethodParam, r.signatureMethod.String()},
		Pair{oauthConsumerKeyParam, r.consumerKey},
		Pair{oauthVersionParam, r.version},
		Pair{oauthTimestampParam, r.timestamp},
		Pair{oauthNonceParam, r.nonce},
	)
	keys := make([]string, 0, len(r.additional))
	for key := range r.additional {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.params = append(r.params, Pair{key, r.additional[key]})
	}
	return nil
}

// BaseString combines the uppercase request method, the percent encoded
// endpoint minus its query, and the normalized parameter block into the
// signature base string according to RFC 5849 3.4.1. The two top level
// separators are the only raw "&" bytes in the result. The working list is
// sorted in place, so the finalized output keeps the normalized order.
func (r *Request) BaseString() (string, error) {
	if err := r.prepare(); err != nil {
		return "", err
	}
	sort.Sort(r.params)
	baseParts := []string{r.httpMethod.String(), PercentEncode(baseURI(r.endpoint)), r.params.Encode()}
	return strings.Join(baseParts, "&"), nil
}

// baseURI returns the endpoint with the query part stripped. The host is
// lowercased according to RFC 5849 3.4.1.2; url.Parse already lowercases the
// scheme. An explicit port stays.
func baseURI(endpoint *url.URL) string {
	u := *endpoint
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.ForceQuery = false
	return u.String()
}

// Validate reports whether the request carries everything a temporary
// credential request must send. The consumer secret is deliberately not
// checked, signing with an empty secret is still well defined. Validation is
// advisory: RequestParameters does not consult it.
func (r *Request) Validate() error {
	if r.requestType != TemporaryCredentials {
		return ErrUnsupportedRequestType
	}
	var missing []string
	if r.endpoint == nil || r.endpoint.String() == "" {
		missing = append(missing, "endpoint")
	}
	if r.callbackURL == "" {
		missing = append(missing, oauthCallbackParam)
	}
	if r.consumerKey == "" {
		missing = append(missing, oauthConsumerKeyParam)
	}
	if r.nonce == "" {
		missing = append(missing, oauthNonceParam)
	}
	if r.signatureMethod.String() == "" {
		missing = append(missing, oauthSignatureMethodParam)
	}
	if r.timestamp == "" {
		missing = append(missing, oauthTimestampParam)
	}
	if r.version == "" {
		missing = append(missing, oauthVersionParam)
	}
	if len(missing) > 0 {
		return fmt.Errorf("oauth1: request incomplete, missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// RequestParameters prepares, signs and finalizes the request. The returned
// "key=value" strings follow the normalized parameter order with
// oauth_signature appended last, exactly once. The list is rebuilt on every
// call, so repeated calls yield the same finalized set for the same cached
// timestamp and nonce.
func (r *Request) RequestParameters() ([]string, error) {
	baseString, err := r.BaseString()
	if err != nil {
		return nil, err
	}
	signature := Sign(baseString, r.consumerSecret, r.tokenSecret)
	r.params = append(r.params, Pair{oauthSignatureParam, signature})
	return r.params.Strings(), nil
}
