package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
)

// APIError is a non-2xx response from the catalog API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: status %d", e.Status)
	}
	return fmt.Sprintf("catalog api: status %d: %s", e.Status, e.Message)
}

type apiFailure struct {
	Message any `json:"message"`
}

// Client wraps outbound calls to the remote catalog API. Authenticated calls
// carry the session token as the raw Authorization header value, no scheme
// prefix — that is the server's contract.
//
// There is no retry or caching: every method is a single request/response
// exchange and any failure is terminal for that attempt.
type Client struct {
	base    string
	path    string
	timeout time.Duration
}

func NewClient(base, path string, timeout time.Duration) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		path:    strings.Trim(path, "/"),
		timeout: timeout,
	}
}

// binder decodes a 2xx body into out (when out is non-nil) and turns any
// other status into an *APIError carrying the server's message. gout applies
// decoders registered inside a Callback only after the callback returns nil,
// so the callback records the status and raw body and finish assembles the
// error after Do.
type binder struct {
	out  any
	code int
	body []byte
}

func bind(out any) *binder {
	return &binder{out: out}
}

func (b *binder) callback(c *gout.Context) error {
	if c.Code >= 200 && c.Code < 300 {
		if b.out != nil {
			c.BindJSON(b.out)
		}
		return nil
	}
	b.code = c.Code
	c.BindBody(&b.body)
	return nil
}

func (b *binder) finish(err error) error {
	if b.code == 0 {
		return err
	}
	apiErr := &APIError{Status: b.code}
	var failure apiFailure
	if err := json.Unmarshal(b.body, &failure); err == nil && failure.Message != nil {
		apiErr.Message = fmt.Sprint(failure.Message)
	}
	return apiErr
}

func (c *Client) reqCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) adminURL(parts ...string) string {
	url := c.base + "/api/" + c.path + "/admin"
	for _, p := range parts {
		url += "/" + p
	}
	return url
}

// Check validates the session token against the API. Any error means the
// token must not be treated as a live session.
func (c *Client) Check(ctx context.Context, token string) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	b := bind(nil)
	return b.finish(gout.POST(c.base + "/api/user/check").
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": token}).
		Callback(b.callback).
		Do())
}

// SignIn exchanges credentials for a session token and its expiry.
func (c *Client) SignIn(ctx context.Context, username, password string) (SignInResult, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	var result SignInResult
	b := bind(&result)
	err := gout.POST(c.base + "/admin/signin").
		WithContext(ctx).
		SetJSON(gout.H{"username": username, "password": password}).
		Callback(b.callback).
		Do()
	return result, b.finish(err)
}

// ListProducts fetches one page of the catalog.
func (c *Client) ListProducts(ctx context.Context, token string, page int) (ProductList, error) {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	if page < 1 {
		page = 1
	}
	var list ProductList
	b := bind(&list)
	err := gout.GET(c.adminURL("products")).
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": token}).
		SetQuery(gout.H{"page": page}).
		Callback(b.callback).
		Do()
	return list, b.finish(err)
}

// CreateProduct posts a new product to the collection endpoint.
func (c *Client) CreateProduct(ctx context.Context, token string, payload ProductPayload) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	b := bind(nil)
	return b.finish(gout.POST(c.adminURL("product")).
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": token}).
		SetJSON(gout.H{"data": payload}).
		Callback(b.callback).
		Do())
}

// UpdateProduct replaces the product identified by id.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, payload ProductPayload) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	b := bind(nil)
	return b.finish(gout.PUT(c.adminURL("product", id)).
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": token}).
		SetJSON(gout.H{"data": payload}).
		Callback(b.callback).
		Do())
}

// DeleteProduct removes the product identified by id.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	b := bind(nil)
	return b.finish(gout.DELETE(c.adminURL("product", id)).
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": token}).
		Callback(b.callback).
		Do())
}
