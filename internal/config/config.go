package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"skill-gap/internal/domain/advisor"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/position"
	"skill-gap/internal/domain/training"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Engine   EngineConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type AuthConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// EngineConfig bundles the tunables of the four engine stages. Values come
// from the environment with the engine defaults as fallback, so deployments
// can recalibrate without a rebuild.
type EngineConfig struct {
	Matching matching.Config
	Position position.Config
	Training training.Config
	Advisor  advisor.Config
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        envDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(envInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(envInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   envDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   envDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: envDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Auth = AuthConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  envDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: envDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Engine = LoadEngine()

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadEngine reads the engine tunables, falling back to the documented
// defaults for anything unset.
func LoadEngine() EngineConfig {
	m := matching.DefaultConfig()
	m.SkillWeight = envFloat("MATCH_SKILL_WEIGHT", m.SkillWeight)
	m.EducationWeight = envFloat("MATCH_EDUCATION_WEIGHT", m.EducationWeight)
	m.ExperienceWeight = envFloat("MATCH_EXPERIENCE_WEIGHT", m.ExperienceWeight)
	m.PositionWeight = envFloat("MATCH_POSITION_WEIGHT", m.PositionWeight)
	m.IntentWeight = envFloat("MATCH_INTENT_WEIGHT", m.IntentWeight)
	m.ExcellentThreshold = envFloat("MATCH_EXCELLENT_THRESHOLD", m.ExcellentThreshold)
	m.GoodThreshold = envFloat("MATCH_GOOD_THRESHOLD", m.GoodThreshold)
	m.FairThreshold = envFloat("MATCH_FAIR_THRESHOLD", m.FairThreshold)

	p := position.DefaultConfig()
	p.Clusters = envInt("POSITION_CLUSTERS", p.Clusters)
	p.Neighbors = envInt("POSITION_NEIGHBORS", p.Neighbors)
	p.MinDist = envFloat("POSITION_MIN_DIST", p.MinDist)
	p.Epochs = envInt("POSITION_EPOCHS", p.Epochs)
	p.TopSkills = envInt("POSITION_TOP_SKILLS", p.TopSkills)
	p.Seed = int64(envInt("POSITION_SEED", int(p.Seed)))

	t := training.DefaultConfig()
	t.MaxIntroPerSkill = envInt("TRAINING_MAX_INTRO_PER_SKILL", t.MaxIntroPerSkill)
	t.MaxDeepPerSkill = envInt("TRAINING_MAX_DEEP_PER_SKILL", t.MaxDeepPerSkill)

	a := advisor.DefaultConfig()
	a.Mentors = envInt("ADVISOR_MENTORS", a.Mentors)
	a.MaxRadius = envFloat("ADVISOR_MAX_RADIUS", a.MaxRadius)
	a.CourseRecs = envInt("ADVISOR_COURSE_RECS", a.CourseRecs)

	return EngineConfig{Matching: m, Position: p, Training: t, Advisor: a}
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
