package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	// Redirect names where the client should send the user, mirroring the
	// navigation the SPA performed for guard rejections.
	Redirect string `json:"redirect,omitempty"`
	Detail   any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRedirect is AbortWithError plus a redirect target for the client
// router.
func AbortWithRedirect(c *gin.Context, status int, err error, msg, redirect string) {
	if err == nil {
		panic("AbortWithRedirect: err cannot be nil")
	}

	resp := Response{Status: status, Redirect: redirect}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
