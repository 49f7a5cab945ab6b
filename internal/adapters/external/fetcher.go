package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultFetchTimeout = 10 * time.Second
	userAgent           = "citycast/1.0"
	redacted            = "***"

	outcomeSuccess         = "success"
	outcomeTransportError  = "transport_error"
	outcomeValidationError = "validation_error"
)

// secretParams are never written to logs
var secretParams = map[string]bool{"appid": true, "key": true, "access_token": true}

// Request describes one outbound call. Endpoint labels metrics and logs;
// the URL path is used when it is empty.
type Request struct {
	Method   string
	URL      string
	Params   map[string]string
	Body     any
	Endpoint string
}

// Fetcher performs a single HTTP call and checks the decoded body against a
// declared Go shape. It never retries.
type Fetcher struct {
	client   *resty.Client
	validate *validator.Validate
	limiter  *rate.Limiter
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// FetcherParams holds parameters for creating a fetcher.
// RequestsPerSecond <= 0 disables outbound rate limiting.
type FetcherParams struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Logger            ports.Logger
	Metrics           ports.MetricsCollector
}

// NewFetcher creates a new fetcher
func NewFetcher(params FetcherParams) *Fetcher {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0)

	var limiter *rate.Limiter
	if params.RequestsPerSecond > 0 {
		burst := params.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(params.RequestsPerSecond), burst)
	}

	return &Fetcher{
		client:   client,
		validate: newShapeValidator(),
		limiter:  limiter,
		logger:   params.Logger,
		metrics:  params.Metrics,
	}
}

// newShapeValidator reports field paths using JSON names
func newShapeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Fetch performs req and decodes the body into T. Transport failures and
// non-2xx statuses are transport errors; type mismatches and missing required
// fields are response validation errors. No partially validated value is
// ever returned.
func Fetch[T any](ctx context.Context, f *Fetcher, req Request) (*T, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method != http.MethodGet && method != http.MethodPost {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported method %q", req.Method))
	}

	endpoint := req.endpoint()
	start := time.Now()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, f.fail(ctx, req, endpoint, start, outcomeTransportError,
				errors.NewTransportError("rate limiter wait aborted", 0, err))
		}
	}

	r := f.client.R().
		SetContext(ctx).
		SetQueryParams(req.Params)
	if req.Body != nil {
		r = r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(method, req.URL)
	if err != nil {
		return nil, f.fail(ctx, req, endpoint, start, outcomeTransportError,
			errors.NewTransportError("request failed", 0, err))
	}
	if !resp.IsSuccess() {
		return nil, f.fail(ctx, req, endpoint, start, outcomeTransportError,
			errors.NewTransportError(fmt.Sprintf("unexpected status %d", resp.StatusCode()), resp.StatusCode(), nil))
	}

	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, f.fail(ctx, req, endpoint, start, outcomeValidationError, decodeError(err))
	}
	if err := f.validateShape(out); err != nil {
		return nil, f.fail(ctx, req, endpoint, start, outcomeValidationError, err)
	}

	f.record(ctx, endpoint, outcomeSuccess, time.Since(start))
	return &out, nil
}

// validateShape validates a struct, or every element of a slice of structs
func (f *Fetcher) validateShape(v any) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return errors.NewResponseValidationError("$", "response body is empty", nil)
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return shapeError("", f.validate.Struct(value.Interface()))
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			elem := reflect.Indirect(value.Index(i))
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := shapeError(fmt.Sprintf("[%d]", i), f.validate.Struct(elem.Interface())); err != nil {
				return err
			}
		}
	}
	return nil
}

func shapeError(prefix string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewResponseValidationError(prefix, "response validation failed", err)
	}

	first := fieldErrs[0]
	path := first.Namespace()
	// drop the root type name
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	if prefix != "" {
		path = prefix + "." + path
	}
	return errors.NewResponseValidationError(path, fmt.Sprintf("failed %q check", first.Tag()), err)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = "$"
		}
		return errors.NewResponseValidationError(path,
			fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value), err)
	}
	return errors.NewResponseValidationError("$", "response body is not valid JSON", err)
}

func (f *Fetcher) fail(ctx context.Context, req Request, endpoint string, start time.Time, outcome string, err error) error {
	duration := time.Since(start)
	f.record(ctx, endpoint, outcome, duration)

	if f.logger != nil {
		var status int
		var path string
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			status, path = appErr.StatusCode, appErr.Path
		}
		f.logger.Error("Outbound request failed",
			ports.F("endpoint", endpoint),
			ports.F("method", req.Method),
			ports.F("url", req.URL),
			ports.F("params", redactParams(req.Params)),
			ports.F("status", status),
			ports.F("path", path),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
	}
	return err
}

func (f *Fetcher) record(ctx context.Context, endpoint, outcome string, duration time.Duration) {
	if f.metrics != nil {
		f.metrics.RecordOutboundRequest(ctx, endpoint, outcome, duration)
	}
}

func (r Request) endpoint() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	u := r.URL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i:]
	}
	return "/"
}

func redactParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if secretParams[strings.ToLower(k)] {
			v = redacted
		}
		out[k] = v
	}
	return out
}
