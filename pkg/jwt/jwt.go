package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hzjwt "github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/response"
	"vidtube.com/pkg/utils"
)

type Config struct {
	Secret string
	Realm  string
	// ClaimKey names the token claim carrying the user id.
	ClaimKey string
}

var AuthMiddleware *hzjwt.HertzJWTMiddleware

// AccessTokenJwtInit builds the verifier for bearer tokens minted by the account service.
func AccessTokenJwtInit(cfg Config) error {
	mw, err := NewMiddleware(cfg)
	if err != nil {
		return err
	}
	AuthMiddleware = mw
	return nil
}

func NewMiddleware(cfg Config) (*hzjwt.HertzJWTMiddleware, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	claimKey := cfg.ClaimKey
	if claimKey == "" {
		claimKey = constants.IdentityKey
	}
	mw, err := hzjwt.New(&hzjwt.HertzJWTMiddleware{
		Realm:         cfg.Realm,
		Key:           []byte(cfg.Secret),
		Timeout:       time.Hour,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) hzjwt.MapClaims {
			if id, ok := data.(string); ok {
				return hzjwt.MapClaims{claimKey: id}
			}
			return hzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hzjwt.ExtractClaims(ctx, c)
			id, _ := claims[claimKey].(string)
			return id
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(string)
			return ok && utils.IsValidID(id)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			hlog.CtxInfof(ctx, "jwt rejected request: code=%d msg=%s", code, message)
			response.SendError(ctx, c, errno.AuthorizationFailedErr.WithMessage("Unauthorized request"))
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "init jwt middleware")
	}
	return mw, nil
}

// GetUserID returns the verified requester id, or "" when the request is anonymous.
func GetUserID(c *app.RequestContext) string {
	v, _ := c.Get(constants.IdentityKey)
	return utils.Transfer(v)
}
