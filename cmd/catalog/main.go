package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skill-gap/internal/app"
	"skill-gap/internal/config"
	"skill-gap/internal/database/migration"
	"skill-gap/internal/database/seeder"
	"skill-gap/internal/ingest"
	"skill-gap/internal/pipeline"
)

func main() {
	pages := flag.Int("pages", 2, "listing pages to pull per catalog source")
	workers := flag.Int("workers", 10, "scoring workers for the refresh pipeline")
	headless := flag.Bool("headless", false, "include the headless browser source")
	seed := flag.Bool("seed", false, "seed demo employees, jobs and courses first")
	refresh := flag.Bool("refresh", true, "recompute match scores and positions after ingest")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{Dir: "migrations", Log: c.Logger}).Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
		defer seedCancel()
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Log: c.Logger}).Run(seedCtx, c.DB); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	svc := newCatalogService(c, *headless)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	count, err := svc.Refresh(ctx, *pages)
	if err != nil {
		log.Fatalf("catalog refresh failed: %v", err)
	}
	log.Printf("catalog refresh done courses=%d", count)

	if *refresh {
		if err := c.Refresh.Run(ctx, pipeline.Params{ScoringWorkers: *workers}); err != nil {
			log.Fatalf("pipeline refresh failed: %v", err)
		}
		st := c.Refresh.Status()
		log.Printf("pipeline refresh done pairs=%d failed=%d employees=%d", st.Pairs, st.Failed, st.Employees)
	}
}

func newCatalogService(c *app.Container, headless bool) ingest.CatalogService {
	if headless {
		return ingest.NewCatalogService(c.Courses, c.Logger,
			ingest.NewCourseraScraper(c.Normalizer),
			ingest.NewClassCentralScraper(c.Normalizer),
			ingest.NewUdemyScraper(c.Normalizer),
		)
	}
	return ingest.NewCatalogService(c.Courses, c.Logger,
		ingest.NewCourseraScraper(c.Normalizer),
		ingest.NewClassCentralScraper(c.Normalizer),
	)
}
