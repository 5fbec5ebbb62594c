package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"classboard/internal/config"
	"classboard/internal/handlers"
	"classboard/internal/middleware"
	"classboard/internal/repository"
	"classboard/internal/service"
	"classboard/internal/store"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config decides the real handler.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// Store selection: redis for a persistent dashboard, memory for local
	// development without a running redis.
	var st store.Store
	switch strings.ToLower(config.Cfg.Store.Driver) {
	case "redis":
		redisStore, err := store.NewRedisStore(
			config.Cfg.Redis.Addr,
			config.Cfg.Redis.Password,
			config.Cfg.Redis.DB,
			logger,
		)
		if err != nil {
			slog.Error("Error connecting to redis", slog.Any("error", err), slog.String("addr", config.Cfg.Redis.Addr))
			os.Exit(1)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				slog.Error("Error closing redis connection", slog.Any("error", err))
			} else {
				slog.Info("Redis connection closed.")
			}
		}()
		st = redisStore
	case "memory":
		st = store.NewMemStore()
		slog.Warn("Using in-memory store; state is lost on restart")
	default:
		slog.Error("Unknown store driver", slog.String("driver", config.Cfg.Store.Driver))
		os.Exit(1)
	}

	// Dependency injection.
	userRepo := repository.NewStoreUserRepository(st, logger)
	courseRepo := repository.NewStoreCourseRepository(st, logger)
	subRepo := repository.NewStoreSubmissionRepository(st, logger)
	scheduleRepo := repository.NewStoreScheduleRepository(st, logger)
	sessionRepo := repository.NewStoreSessionRepository(st, logger)

	authService := service.NewAuthService(userRepo, sessionRepo, &config.Cfg, logger)
	courseService := service.NewCourseService(courseRepo, logger)
	gradeService := service.NewGradeService(courseRepo, logger)
	submissionService := service.NewSubmissionService(subRepo, courseRepo, logger)
	plannerService := service.NewPlannerService(courseRepo, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger)
	gradeHandler := handlers.NewGradeHandler(gradeService, logger)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, logger)
	plannerHandler := handlers.NewPlannerHandler(plannerService, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)

	// Router.
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionMiddleware(&config.Cfg, userRepo))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", courseHandler.GetCourses)
				r.Get("/{course_id}", courseHandler.GetCourse)
				r.Get("/{course_id}/grades", gradeHandler.GetCourseGrades)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireInstructor)
					r.Post("/", courseHandler.PostCourse)
					r.Put("/{course_id}", courseHandler.PutCourse)
					r.Delete("/{course_id}", courseHandler.DeleteCourse)
					r.Post("/{course_id}/modules", courseHandler.PostModule)
					r.Post("/{course_id}/modules/{module_id}/items", courseHandler.PostItem)
					r.Post("/{course_id}/assignments", courseHandler.PostAssignment)
					r.Post("/{course_id}/quizzes", courseHandler.PostQuiz)
				})
			})

			r.With(middleware.RequireInstructor).Post("/grades", gradeHandler.PostGrade)
			r.Post("/quizzes/{quiz_id}/attempts", gradeHandler.PostQuizAttempt)

			r.Route("/submissions", func(r chi.Router) {
				r.Post("/", submissionHandler.PostSubmission)
			})
			r.Get("/assignments/{assignment_id}/submissions/latest", submissionHandler.GetLatestSubmission)
			r.With(middleware.RequireInstructor).Get("/assignments/{assignment_id}/submissions", submissionHandler.GetSubmissions)

			r.Route("/planner", func(r chi.Router) {
				r.Get("/todos", plannerHandler.GetTodos)
				r.Get("/calendar", plannerHandler.GetCalendar)
				r.Post("/events", plannerHandler.PostEvent)
			})

			r.Route("/schedule/tasks", func(r chi.Router) {
				r.Get("/", scheduleHandler.GetTasks)
				r.Post("/", scheduleHandler.PostTask)
				r.Delete("/", scheduleHandler.DeleteTasks)
				r.Post("/{task_id}/notes", scheduleHandler.PostNote)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
