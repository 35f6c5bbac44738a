// Package api 以 HTTP 暴露定点高斯 CDF 核心。
// 输入输出均为十进制字符串，经 decimal 精确转换为 WAD 整数，
// 全程不经过浮点，与库内直接调用结果逐位一致。
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "gausscdf_request_id"

// Server HTTP 服务
type Server struct {
	log *logrus.Logger
}

// New 创建服务实例。
func New(log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{log: log}
}

// Router 构建 gin 路由。
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api")
	api.POST("/cdf", s.handleCdf)
	api.POST("/erfc", s.handleErfc)

	return r
}

// requestID 为每个请求注入 request id，响应头透出以便对账日志。
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"request_id": c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Debug("http request")
	}
}
