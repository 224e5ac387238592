package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

// HTTPClient implements API on top of resty. It is safe for concurrent use.
type HTTPClient struct {
	rc  *resty.Client
	log logging.Logger
}

// NewHTTPClient binds a client to baseURL, e.g. "http://localhost:8080/api".
// A zero timeout leaves the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log}).
		SetRetryCount(0)

	if timeout > 0 {
		rc.SetTimeout(timeout)
	}

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(common.RequestIDHeaderName) == "" {
			r.SetHeader(common.RequestIDHeaderName, uuid.NewString())
		}
		return nil
	})

	return &HTTPClient{rc: rc, log: log}
}

type call struct {
	op     string
	method string
	path   string
	params map[string]string
	body   any
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

// do runs one request. A non-nil RequestError means there is no usable body.
func (c *HTTPClient) do(ctx context.Context, cl call) (*resty.Response, *RequestError) {
	req := c.rc.R().SetContext(ctx).SetPathParams(cl.params)
	if cl.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		rerr := &RequestError{Op: cl.op, Kind: KindUnavailable, Err: err}
		if ctx.Err() != nil {
			rerr.Kind = KindCanceled
			rerr.Err = ctx.Err()
			return nil, rerr
		}
		c.log.Warn(ctx, "request failed", "op", cl.op, "method", cl.method, "path", cl.path, "error", err)
		return nil, rerr
	}

	if !resp.IsSuccess() {
		rerr := &RequestError{
			Op:         cl.op,
			Kind:       KindRejected,
			StatusCode: resp.StatusCode(),
			Body:       string(bytes.TrimSpace(resp.Body())),
		}
		c.log.Warn(ctx, "request rejected",
			"op", cl.op, "status", resp.StatusCode(), "body", rerr.Body,
			"request_id", resp.Request.Header.Get(common.RequestIDHeaderName))
		return nil, rerr
	}

	c.log.Debug(ctx, "request done", "op", cl.op, "status", resp.StatusCode(), "elapsed", resp.Time())
	return resp, nil
}

func isNullBody(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

func fetchOne[T any](ctx context.Context, c *HTTPClient, cl call) Result[T] {
	resp, rerr := c.do(ctx, cl)
	if rerr != nil {
		return Failed[T](rerr)
	}
	if isNullBody(resp.Body()) {
		return Empty[T]()
	}

	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		c.log.Warn(ctx, "bad response body", "op", cl.op, "error", err)
		return Failed[T](&RequestError{Op: cl.op, Kind: KindDecode, StatusCode: resp.StatusCode(), Err: err})
	}
	return Ok(v)
}

func fetchList[T any](ctx context.Context, c *HTTPClient, cl call) Result[[]T] {
	r := fetchOne[[]T](ctx, c, cl)
	if v, ok := r.Get(); ok && len(v) == 0 {
		return Empty[[]T]()
	}
	return r
}

func (c *HTTPClient) FetchUser(ctx context.Context, email string) Result[models.User] {
	return fetchOne[models.User](ctx, c, call{
		op: "fetch user", method: http.MethodGet, path: "/user/{email}",
		params: map[string]string{"email": email},
	})
}

func (c *HTTPClient) FetchSkills(ctx context.Context, userID int64) Result[[]models.Skill] {
	return fetchList[models.Skill](ctx, c, call{
		op: "fetch skills", method: http.MethodGet, path: "/skills/{userId}",
		params: map[string]string{"userId": id(userID)},
	})
}

func (c *HTTPClient) AddSkill(ctx context.Context, userID int64, skill models.NewSkill) Result[models.Skill] {
	return fetchOne[models.Skill](ctx, c, call{
		op: "add skill", method: http.MethodPost, path: "/skills/add/{userId}",
		params: map[string]string{"userId": id(userID)},
		body:   skill,
	})
}

func (c *HTTPClient) UpdateSkillLevel(ctx context.Context, skillID int64, level models.SkillLevel) Result[models.Skill] {
	return fetchOne[models.Skill](ctx, c, call{
		op: "update skill level", method: http.MethodPut, path: "/skills/update/{skillId}",
		params: map[string]string{"skillId": id(skillID)},
		body:   map[string]models.SkillLevel{"level": level},
	})
}

func (c *HTTPClient) FetchRoadmap(ctx context.Context, userID int64) Result[[]models.RoadmapStep] {
	return fetchList[models.RoadmapStep](ctx, c, call{
		op: "fetch roadmap", method: http.MethodGet, path: "/roadmap/{userId}",
		params: map[string]string{"userId": id(userID)},
	})
}

func (c *HTTPClient) AddRoadmapStep(ctx context.Context, userID int64, step models.NewRoadmapStep) Result[models.RoadmapStep] {
	return fetchOne[models.RoadmapStep](ctx, c, call{
		op: "add roadmap step", method: http.MethodPost, path: "/roadmap/add/{userId}",
		params: map[string]string{"userId": id(userID)},
		body:   step,
	})
}

func (c *HTTPClient) UpdateRoadmapStepStatus(ctx context.Context, stepID int64, status models.StepStatus) Result[models.RoadmapStep] {
	return fetchOne[models.RoadmapStep](ctx, c, call{
		op: "update roadmap step", method: http.MethodPut, path: "/roadmap/update/{stepId}",
		params: map[string]string{"stepId": id(stepID)},
		body:   map[string]models.StepStatus{"status": status},
	})
}

// DeleteRoadmapStep is Ok(true) on any 2xx; the body is ignored.
func (c *HTTPClient) DeleteRoadmapStep(ctx context.Context, stepID int64) Result[bool] {
	_, rerr := c.do(ctx, call{
		op: "delete roadmap step", method: http.MethodDelete, path: "/roadmap/delete/{stepId}",
		params: map[string]string{"stepId": id(stepID)},
	})
	if rerr != nil {
		return Failed[bool](rerr)
	}
	return Ok(true)
}

// raw runs an auth request and passes any HTTP answer through untouched.
func (c *HTTPClient) raw(ctx context.Context, op, path string, body any) (*Response, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &RequestError{Op: op, Kind: KindCanceled, Err: ctx.Err()}
		}
		c.log.Warn(ctx, "request failed", "op", op, "path", path, "error", err)
		return nil, &RequestError{Op: op, Kind: KindUnavailable, Err: err}
	}
	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*Response, error) {
	return c.raw(ctx, "login", "/auth/login", creds)
}

func (c *HTTPClient) Register(ctx context.Context, user models.NewUser) (*Response, error) {
	return c.raw(ctx, "register", "/auth/register", user)
}

// Ping checks the health endpoint. Any failure maps to ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.rc.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: health status %d", ErrUnavailable, resp.StatusCode())
	}
	return nil
}

// restyLogger routes resty's own diagnostics into the application logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

var (
	_ API          = (*HTTPClient)(nil)
	_ resty.Logger = restyLogger{}
)
