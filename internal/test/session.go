package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 直接从 gin.Context 里取测试塞进去的 session
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// SessionMiddleware 给整个 server 挂一个固定身份的登录态，
// role 用 user 模块里的 RoleTeacher / RoleStudent
func SessionMiddleware(uid int64, role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": role},
		}))
	}
}
