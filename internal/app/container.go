package app

import (
	"context"
	"log"
	"os"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/pipeline"
	"skill-gap/internal/pkg/jwt"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"
	"skill-gap/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Normalizer *skill.Normalizer
	JWT        jwt.Service

	Employees repository.EmployeeRepository
	Jobs      repository.JobRepository
	Matches   repository.MatchRepository
	Courses   repository.CourseRepository
	Plans     repository.PlanRepository
	Accounts  repository.AccountRepository

	Auth      usecase.AuthUsecase
	Matcher   usecase.MatchUsecase
	Training  usecase.TrainingUsecase
	Positions usecase.PositionUsecase
	Advisor   usecase.AdvisorUsecase

	Hub     *ws.Hub
	Refresh *pipeline.RefreshPipeline
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Cache:      cache.NewRedis(logger),
		Normalizer: skill.NewNormalizer(skill.DefaultCategories()),
		JWT: jwt.NewHMACService(
			cfg.Auth.AccessSecret,
			cfg.Auth.RefreshSecret,
			cfg.Auth.AccessExpiresIn,
			cfg.Auth.RefreshExpiresIn,
		),
	}

	c.Employees = repository.NewPostgresEmployeeRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Matches = repository.NewPostgresMatchRepository(db)
	c.Courses = repository.NewPostgresCourseRepository(db)
	c.Plans = repository.NewPostgresPlanRepository(db)
	c.Accounts = repository.NewPostgresAccountRepository(db)

	c.Auth = usecase.NewAuthUsecase(c.Accounts, c.JWT)
	c.Matcher = usecase.NewMatchUsecase(c.Employees, c.Jobs, c.Matches, c.Normalizer, cfg.Engine.Matching, logger)
	c.Training = usecase.NewTrainingUsecase(
		c.Employees, c.Jobs, c.Courses, c.Plans,
		c.Normalizer, cfg.Engine.Matching, cfg.Engine.Training, logger,
	)
	c.Positions = usecase.NewPositionUsecase(c.Employees, c.Normalizer, c.Cache, cfg.Engine.Position, logger)
	c.Advisor = usecase.NewAdvisorUsecase(
		c.Employees, c.Jobs, c.Courses, c.Positions,
		c.Normalizer, c.Cache, cfg.Engine.Advisor, logger,
	)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	c.Refresh = pipeline.NewRefreshPipeline(c.Employees, c.Jobs, c.Matcher, c.Positions, logger)
	c.Refresh.SetLockCache(c.Cache)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && c.Logger != nil {
			c.Logger.Printf("[App] Cache close error | error=%v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
