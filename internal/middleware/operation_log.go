// Package middleware 提供 HTTP 中间件
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// OperationLogger 员工操作日志中间件，记录写操作的审计信息
type OperationLogger struct {
	repo *repository.OperationLogRepository
}

// NewOperationLogger 创建操作日志中间件
func NewOperationLogger(repo *repository.OperationLogRepository) *OperationLogger {
	return &OperationLogger{repo: repo}
}

// Log 操作日志中间件处理函数
func (l *OperationLogger) Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.shouldLog(c) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		staffID := GetStaffID(c)
		if staffID <= 0 {
			return
		}

		log := &models.OperationLog{
			StaffID:   staffID,
			Method:    c.Request.Method,
			Path:      c.FullPath(),
			IP:        c.ClientIP(),
			Status:    c.Writer.Status(),
			LatencyMs: time.Since(start).Milliseconds(),
		}
		if log.Path == "" {
			log.Path = c.Request.URL.Path
		}
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			query := rawQuery
			if len(query) > 512 {
				query = query[:512]
			}
			log.Query = &query
		}

		// 异步落库，避免阻塞响应
		go l.save(log)
	}
}

// shouldLog 只记录写操作
func (l *OperationLogger) shouldLog(c *gin.Context) bool {
	switch c.Request.Method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}

func (l *OperationLogger) save(log *models.OperationLog) {
	if l.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = l.repo.Create(ctx, log)
}
