package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"cafe_directory/internal/adapters/observability"
	"cafe_directory/internal/domain"
	"cafe_directory/internal/shared"
	mysqlrepo "cafe_directory/internal/storage/mysql"
)

// seedCafe mirrors the fixture file's field names.
type seedCafe struct {
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var cafes []seedCafe
	if err := json.Unmarshal(raw, &cafes); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, sc := range cafes {
		sc := sc

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sc seedCafe) {
			defer wg.Done()
			defer sem.Release(1)

			id, err := repo.Insert(ctx, domain.Cafe{
				Name:         sc.Name,
				MapURL:       sc.MapURL,
				ImgURL:       sc.ImgURL,
				Location:     sc.Location,
				Seats:        sc.Seats,
				HasToilet:    sc.HasToilet,
				HasWifi:      sc.HasWifi,
				HasSockets:   sc.HasSockets,
				CanTakeCalls: sc.CanTakeCalls,
				CoffeePrice:  sc.CoffeePrice,
			})
			if err != nil {
				if errors.Is(err, domain.ErrDuplicateName) {
					log.Warn().Str("name", sc.Name).Msg("already seeded, skipping")
					return
				}
				log.Warn().Str("name", sc.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", id).Str("name", sc.Name).Msg("seed ok")
		}(sc)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
