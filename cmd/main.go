package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/config"
	"github.com/mkhadiri/mentorhub/database"
	"github.com/mkhadiri/mentorhub/internal/controller"
	"github.com/mkhadiri/mentorhub/internal/logger"
	"github.com/mkhadiri/mentorhub/internal/middleware"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/mkhadiri/mentorhub/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MentorHub API
// @version 1.0
// @description Content management backend for a mentorship platform: projects, reports, tests, questions, resources and test results with role based access.
// @contact.name API Support
// @contact.email support@mentorhub.example
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewOtpRepository,
			repository.NewProjectRepository,
			repository.NewReportRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewResourceRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewFileStore,
			service.NewMailer,
			service.NewAuthService,
			service.NewProjectService,
			service.NewReportService,
			service.NewTestService,
			service.NewQuestionService,
			service.NewResourceService,
			service.NewResultService,
			service.NewUserService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewProjectController,
			controller.NewReportController,
			controller.NewTestController,
			controller.NewQuestionController,
			controller.NewResourceController,
			controller.NewResultController,
			controller.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	users repository.UserRepository,
	authCtrl *controller.AuthController,
	projectCtrl *controller.ProjectController,
	reportCtrl *controller.ReportController,
	testCtrl *controller.TestController,
	questionCtrl *controller.QuestionController,
	resourceCtrl *controller.ResourceController,
	resultCtrl *controller.ResultController,
	userCtrl *controller.UserController,
) {
	api := router.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/verify-email", authCtrl.VerifyEmail)
		api.POST("/login", authCtrl.Login)
	}

	auth := api.Group("")
	auth.Use(middleware.Auth(cfg, users))
	{
		auth.POST("/logout", authCtrl.Logout)
		auth.GET("/me", authCtrl.Me)

		auth.GET("/projects", projectCtrl.List)
		auth.POST("/projects", projectCtrl.Create)
		auth.GET("/projects/:id", projectCtrl.Get)
		auth.PUT("/projects/:id", projectCtrl.Update)
		auth.DELETE("/projects/:id", projectCtrl.Delete)
		auth.GET("/projects/:id/download", projectCtrl.Download)

		auth.GET("/reports", reportCtrl.List)
		auth.POST("/reports", reportCtrl.Create)
		auth.GET("/reports/:id", reportCtrl.Get)
		auth.PUT("/reports/:id", reportCtrl.Update)
		auth.PUT("/reports/:id/status", reportCtrl.UpdateStatus)
		auth.DELETE("/reports/:id", reportCtrl.Delete)
		auth.GET("/reports/:id/download", reportCtrl.Download)

		auth.GET("/tests", testCtrl.List)
		auth.POST("/tests", testCtrl.Create)
		auth.GET("/tests/:id", testCtrl.Get)
		auth.PUT("/tests/:id", testCtrl.Update)
		auth.DELETE("/tests/:id", testCtrl.Delete)
		auth.GET("/tests/:id/download", testCtrl.Download)

		auth.GET("/questions", questionCtrl.List)
		auth.POST("/questions", questionCtrl.Create)
		auth.GET("/questions/:id", questionCtrl.Get)
		auth.PUT("/questions/:id", questionCtrl.Update)
		auth.DELETE("/questions/:id", questionCtrl.Delete)
		auth.GET("/questions/:id/download", questionCtrl.Download)

		auth.GET("/resources", resourceCtrl.List)
		auth.POST("/resources", resourceCtrl.Create)
		auth.GET("/resources/:id", resourceCtrl.Get)
		auth.PUT("/resources/:id", resourceCtrl.Update)
		auth.DELETE("/resources/:id", resourceCtrl.Delete)
		auth.GET("/resources/:id/download", resourceCtrl.Download)

		auth.GET("/user-test-results", resultCtrl.List)
		auth.POST("/user-test-results", resultCtrl.Create)
		auth.GET("/user-test-results/:id", resultCtrl.Get)
		auth.PUT("/user-test-results/:id", resultCtrl.Update)
		auth.DELETE("/user-test-results/:id", resultCtrl.Delete)
		auth.GET("/user-test-results/:id/download", resultCtrl.Download)

		auth.GET("/participants", userCtrl.List)
		auth.GET("/participants/:id", userCtrl.Get)
		auth.PUT("/participants/:id", userCtrl.Update)
		auth.DELETE("/participants/:id", userCtrl.Delete)

		auth.GET("/dashboard/admin", userCtrl.AdminDashboard)
		auth.GET("/dashboard/participant", userCtrl.ParticipantDashboard)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MentorHub API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Otp{},
		&model.Project{},
		&model.Report{},
		&model.Test{},
		&model.Question{},
		&model.Resource{},
		&model.UserTestResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed.")
	return nil
}
