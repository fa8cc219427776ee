package response

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/pkg/errno"
)

// Response is the success envelope.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// SendResponse pack response
func SendResponse(ctx context.Context, c *app.RequestContext, err error, data interface{}, message string) {
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	c.JSON(errno.Success.HTTPCode, Response{
		StatusCode: errno.Success.HTTPCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// SendError renders any error as the failure envelope and aborts the chain.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	if Err.HTTPCode >= 500 {
		hlog.CtxErrorf(ctx, "%s %s failed: %v", c.Method(), c.Path(), err)
	} else {
		hlog.CtxInfof(ctx, "%s %s rejected: %v", c.Method(), c.Path(), err)
	}
	// 5xx 的细节只写日志
	errs := []string{}
	if Err.HTTPCode < 500 && Err.Detail != "" {
		errs = append(errs, Err.Detail)
	}
	c.AbortWithStatusJSON(Err.HTTPCode, ErrorResponse{
		StatusCode: Err.HTTPCode,
		Message:    Err.ErrMsg,
		Success:    false,
		Errors:     errs,
	})
}

// Bind binds and validates req, reporting failures as ParamErr with the
// binder message as detail.
func Bind(c *app.RequestContext, req interface{}) error {
	if err := c.BindAndValidate(req); err != nil {
		return errno.ParamErr.WithMessage("Invalid request parameters").WithDetail(err.Error())
	}
	return nil
}
