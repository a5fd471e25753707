// Package main 是应用程序入口
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/config"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/jwt"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/metrics"
	accountHandler "github.com/dumeirei/hotel-reservation-backend/internal/handler/account"
	authHandler "github.com/dumeirei/hotel-reservation-backend/internal/handler/auth"
	bookingHandler "github.com/dumeirei/hotel-reservation-backend/internal/handler/booking"
	paymentHandler "github.com/dumeirei/hotel-reservation-backend/internal/handler/payment"
	roomHandler "github.com/dumeirei/hotel-reservation-backend/internal/handler/room"
	"github.com/dumeirei/hotel-reservation-backend/internal/middleware"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
	"github.com/dumeirei/hotel-reservation-backend/internal/scheduler"
	accountService "github.com/dumeirei/hotel-reservation-backend/internal/service/account"
	authService "github.com/dumeirei/hotel-reservation-backend/internal/service/auth"
	bookingService "github.com/dumeirei/hotel-reservation-backend/internal/service/booking"
	paymentService "github.com/dumeirei/hotel-reservation-backend/internal/service/payment"
	roomService "github.com/dumeirei/hotel-reservation-backend/internal/service/room"
	"github.com/dumeirei/hotel-reservation-backend/pkg/sms"
)

// setupRouter 设置路由，返回已装配好任务的调度器
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *scheduler.Scheduler {
	// 创建 JWT 管理器
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:            cfg.JWT.Secret,
		AccessExpireTime:  cfg.JWT.AccessTokenDuration(),
		RefreshExpireTime: cfg.JWT.RefreshTokenDuration(),
		Issuer:            cfg.JWT.Issuer,
	})

	// 初始化仓储
	bookingRepo := repository.NewBookingRepository(db)
	statusRepo := repository.NewBookingStatusRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	checkOutRepo := repository.NewCheckOutRepository(db)
	cancellationRepo := repository.NewCancellationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomStatusRepo := repository.NewRoomStatusRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	operationLogRepo := repository.NewOperationLogRepository(db)

	// 初始化短信客户端，开发环境使用 Mock
	var smsSender sms.Sender
	if cfg.SMS.Provider == "aliyun" {
		aliyunSender, err := sms.NewAliyunSender(&sms.AliyunConfig{
			AccessKeyID:     cfg.SMS.AccessKeyID,
			AccessKeySecret: cfg.SMS.AccessKeySecret,
			SignName:        cfg.SMS.SignName,
		})
		if err != nil {
			logger.Fatal("Failed to init SMS client", zap.Error(err))
		}
		smsSender = aliyunSender
	} else {
		smsSender = sms.NewMockSender()
	}

	// 初始化服务
	authSvc := authService.NewAuthService(staffRepo, jwtManager)
	staffSvc := accountService.NewStaffService(staffRepo)
	customerSvc := accountService.NewCustomerService(customerRepo)
	roomSvc := roomService.NewRoomService(roomRepo, roomTypeRepo, roomStatusRepo)
	dictSvc := roomService.NewDictService(roomTypeRepo, roomStatusRepo)
	bookingSvc := bookingService.NewBookingService(db, bookingRepo, roomRepo, customerRepo)
	lifecycleSvc := bookingService.NewLifecycleService(
		db, bookingRepo, checkInRepo, checkOutRepo, cancellationRepo,
		smsSender, &cfg.Business.Booking,
	)
	statusSvc := bookingService.NewStatusService(statusRepo)
	recordSvc := bookingService.NewRecordService(checkInRepo, checkOutRepo, cancellationRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, checkOutRepo)

	// 初始化处理器
	authH := authHandler.NewHandler(authSvc)
	staffH := accountHandler.NewStaffHandler(staffSvc)
	customerH := accountHandler.NewCustomerHandler(customerSvc)
	roomH := roomHandler.NewRoomHandler(roomSvc)
	dictH := roomHandler.NewDictHandler(dictSvc)
	bookingH := bookingHandler.NewBookingHandler(bookingSvc)
	lifecycleH := bookingHandler.NewLifecycleHandler(lifecycleSvc)
	recordH := bookingHandler.NewRecordHandler(recordSvc, statusSvc)
	paymentH := paymentHandler.NewHandler(paymentSvc)

	operationLogger := middleware.NewOperationLogger(operationLogRepo)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(nil))
	r.Use(middleware.AccessLog(logger))
	r.Use(metrics.GetMetrics().Middleware())
	if cfg.RateLimit.Enabled {
		r.Use(middleware.IPRateLimit(redisClient, cfg.RateLimit.RequestsPerSecond*60, time.Minute))
	}

	// 健康检查（不需要认证）
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Prometheus 指标
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metrics.Handler())
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 公开接口（登录、刷新 Token）
		authH.RegisterRoutes(v1)

		// 员工接口（需要认证）
		staff := v1.Group("")
		staff.Use(middleware.StaffAuth(jwtManager))
		staff.Use(operationLogger.Log())
		{
			authH.RegisterProtectedRoutes(staff)

			bookingH.RegisterRoutes(staff)
			lifecycleH.RegisterRoutes(staff)
			recordH.RegisterRoutes(staff)

			roomH.RegisterRoutes(staff)
			dictH.RegisterRoutes(staff)

			customerH.RegisterRoutes(staff)
			paymentH.RegisterRoutes(staff)

			// 员工管理仅限管理员
			staffH.RegisterRoutes(staff, middleware.RequireAdmin())
		}
	}

	// 404 处理
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    404,
			"message": "接口不存在",
		})
	})

	// 定时任务
	sched := scheduler.NewScheduler()
	taskHandler := scheduler.NewTaskHandler(bookingRepo, lifecycleSvc, smsSender)
	scheduler.SetupTasks(sched, taskHandler, &cfg.Business.Booking)

	return sched
}
