package authfunc

import (
	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/pkg/jwt"
)

// Auth returns the chain guarding every authenticated route.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.AuthMiddleware.MiddlewareFunc(),
	)
}
