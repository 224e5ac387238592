package client

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrRejected    = errors.New("request rejected by server")
	ErrDecode      = errors.New("malformed response body")
)

type ErrorKind int

const (
	KindUnavailable ErrorKind = iota
	KindRejected
	KindDecode
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindDecode:
		return "decode"
	case KindCanceled:
		return "canceled"
	default:
		return "unavailable"
	}
}

// RequestError describes why a request produced no usable data.
// StatusCode and Body are set for KindRejected.
type RequestError struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindRejected:
		if e.Body != "" {
			return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	case ErrRejected:
		return e.Kind == KindRejected
	case ErrDecode:
		return e.Kind == KindDecode
	case context.Canceled:
		return e.Kind == KindCanceled
	}
	return false
}
