package errno

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	ForbiddenErrCode           = 10004
	NotFoundErrCode            = 10005
	OssErrCode                 = 10006
	TooManyRequestsErrCode     = 10007
	MysqlErrCode               = 10008
	RedisErrCode               = 10009
	MqErrCode                  = 10010
)

// ErrNo is the error type every layer hands to the response boundary.
// HTTPCode is the status written on the wire.
type ErrNo struct {
	HTTPCode int
	ErrCode  int64
	ErrMsg   string
	// Detail is client-safe extra context, rendered only on 4xx.
	Detail string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(httpCode int, code int64, msg string) ErrNo {
	return ErrNo{HTTPCode: httpCode, ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

func (e ErrNo) WithDetail(detail string) ErrNo {
	e.Detail = detail
	return e
}

// Is reports equality by code so wrapped copies with other messages still match.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	if !ok {
		return false
	}
	return e.ErrCode == t.ErrCode
}

var (
	Success                = NewErrNo(http.StatusOK, SuccessCode, "Success")
	ServiceErr             = NewErrNo(http.StatusInternalServerError, ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(http.StatusBadRequest, ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(http.StatusUnauthorized, AuthorizationFailedErrCode, "Authorization failed")
	ForbiddenErr           = NewErrNo(http.StatusForbidden, ForbiddenErrCode, "Only the owner can perform this action")
	NotFoundErr            = NewErrNo(http.StatusNotFound, NotFoundErrCode, "Resource not found")
	OssErr                 = NewErrNo(http.StatusBadGateway, OssErrCode, "Media storage operation failed")
	TooManyRequestsErr     = NewErrNo(http.StatusTooManyRequests, TooManyRequestsErrCode, "Too many requests")
	MysqlErr               = NewErrNo(http.StatusInternalServerError, MysqlErrCode, "Database operation failed")
	RedisErr               = NewErrNo(http.StatusInternalServerError, RedisErrCode, "Cache operation failed")
	MqErr                  = NewErrNo(http.StatusInternalServerError, MqErrCode, "Message queue operation failed")
)

// causeErr ties an ErrNo kind to the error that produced it.
type causeErr struct {
	kind  ErrNo
	cause error
}

func (e *causeErr) Error() string {
	return e.kind.ErrMsg + ": " + e.cause.Error()
}

func (e *causeErr) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Wrap keeps cause in the chain so errors.Is matches both kind and cause
// (context.Canceled, gorm.ErrRecordNotFound). Only kind reaches the client.
func Wrap(kind ErrNo, cause error) error {
	if cause == nil {
		return kind
	}
	return &causeErr{kind: kind, cause: cause}
}

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	// 未知错误不把原始信息返回给客户端
	return ServiceErr.WithMessage("Internal server error")
}
