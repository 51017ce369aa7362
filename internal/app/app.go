package app

import (
	"EduPlatform/internal/app/server"
	"EduPlatform/internal/config"
	"EduPlatform/internal/delivery/http"
	"EduPlatform/internal/delivery/http/validation"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service"
	"EduPlatform/internal/service/auth"
	"EduPlatform/internal/service/chapter/content"
	"EduPlatform/internal/service/chapter/progress"
	"EduPlatform/internal/service/course"
	"EduPlatform/internal/service/course/enrollment"
	"EduPlatform/internal/service/course/management"
	"EduPlatform/internal/service/course/query"
	"EduPlatform/internal/storage/elastic"
	"EduPlatform/internal/storage/minio_storage"
	"EduPlatform/internal/storage/postgres"
	"EduPlatform/pkg/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	ctx := context.Background()

	pgCfg := cfg.Postgres
	if pgCfg.Migrate {
		dsn := postgres.ConnString("pgx5", pgCfg.User, pgCfg.Password, pgCfg.Host, pgCfg.Port, pgCfg.DBName, pgCfg.SSLMode)
		if err := postgres.Migrate(dsn); err != nil {
			log.FatalErr("error applying migrations", err)
		}
		log.Info("migrations applied")
	}

	pg, err := postgres.NewPostgresPool(ctx, postgres.ConnString("postgres", pgCfg.User, pgCfg.Password, pgCfg.Host, pgCfg.Port, pgCfg.DBName, pgCfg.SSLMode))
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	images := initImageStore(ctx, log, cfg.Minio)
	search := initSearchIndex(ctx, log, cfg.ES)

	if err := validation.Register(); err != nil {
		log.FatalErr("error registering validators", err)
	}

	userRepo := postgres.NewUserPostgres(pg.Pool)
	tokenRepo := postgres.NewTokensPostgres(pg.Pool)
	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	chapterRepo := postgres.NewChapterPostgres(pg.Pool)
	enrollmentRepo := postgres.NewEnrollmentPostgres(pg.Pool)
	progressRepo := postgres.NewProgressPostgres(pg.Pool)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := auth.NewAuthService(log.With("service", "auth"), jwtManager, userRepo, tokenRepo)

	courseLog := log.With("service", "course")
	chapterLog := log.With("service", "chapter")
	u := service.Collection{
		AuthService: authService,
		CourseService: &service.CourseService{
			QueryService:      query.NewQueryService(courseLog, courseRepo, chapterRepo, enrollmentRepo, progressRepo, search, images),
			EnrollmentService: enrollment.NewEnrollmentService(courseLog, courseRepo, enrollmentRepo),
			ManagementService: management.NewManagementService(courseLog, courseRepo, chapterRepo, search, images),
		},
		ChapterService: &service.ChapterService{
			ContentService:  content.NewContentService(chapterLog, courseRepo, chapterRepo, enrollmentRepo, progressRepo),
			ProgressService: progress.NewProgressService(chapterLog, chapterRepo, enrollmentRepo, progressRepo),
		},
	}

	seedUsers(ctx, log, authService, cfg.Seed)

	r := http.InitRoutes(log, u, pg.Pool, cfg.CORS)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("http server started", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("http server stopped", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("error shutting down http server", err)
	}
}

// initImageStore returns nil when object storage is disabled so that the
// services see an untyped nil interface.
func initImageStore(ctx context.Context, log logger.Log, cfg config.Minio) course.ImageStore {
	if !cfg.Enabled {
		log.Info("image storage disabled")
		return nil
	}
	client, err := minio_storage.NewMinioStorage(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	images, err := minio_storage.NewImageStorage(ctx, client, cfg.Bucket, cfg.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing image bucket", err, "bucket", cfg.Bucket)
	}
	return images
}

func initSearchIndex(ctx context.Context, log logger.Log, cfg config.ES) course.SearchIndex {
	if !cfg.Enabled {
		log.Info("course search disabled")
		return nil
	}
	client, err := elastic.NewElasticClient(cfg.Username, cfg.Password, cfg.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	repo := elastic.NewCourseSearchRepository(client, cfg.Index)
	if err := repo.CreateIndexIfNotExist(ctx); err != nil {
		log.FatalErr("error creating search index", err, "index", cfg.Index)
	}
	return repo
}

func seedUsers(ctx context.Context, log logger.Log, authService *auth.AuthService, seeds []config.SeedUser) {
	for _, seed := range seeds {
		role := seed.Role
		if role == "" {
			role = models.UserRole
		}
		_, err := authService.EnsureUser(ctx, models.User{
			Name:     seed.Name,
			Email:    seed.Email,
			Password: seed.Password,
			Role:     role,
		})
		if err != nil {
			log.FatalErr("error seeding user", err, "email", seed.Email)
		}
	}
}
