package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	staticcatalog "duskpact/internal/adapter/catalog/static"
	httpadapter "duskpact/internal/adapter/http"
	metricsinmem "duskpact/internal/adapter/metrics/inmemory"
	gormrepo "duskpact/internal/adapter/repo/gorm"
	"duskpact/internal/adapter/repo/memory"
	"duskpact/internal/app/apply"
	"duskpact/internal/app/interpret"
	"duskpact/internal/app/negotiate"
	"duskpact/internal/app/ports"
	"duskpact/internal/app/reset"
	"duskpact/internal/app/telemetry"
	"duskpact/internal/config"
	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
	"duskpact/internal/domain/combat"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.RNGSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	profileRepo, ledgerRepo := buildRepos(cfg)
	catalog := staticcatalog.Provider{Root: cfg.CatalogRoot}
	kpiRecorder := metricsinmem.NewRecorder()

	ctx := context.Background()
	profile := loadProfile(ctx, profileRepo)
	ledger := bargain.NewLedger()
	if values, err := ledgerRepo.Load(ctx); err == nil {
		ledger.Restore(values)
	} else if !errors.Is(err, ports.ErrNotFound) {
		log.Printf("ledger load failed, starting empty: %v", err)
	}

	ladder, err := catalog.Ladder(ctx)
	if err != nil {
		ladder = bargain.DefaultLadder()
	}

	registry := combat.DefaultRegistry()
	player, ok := registry.Baseline(cfg.PlayerName)
	if !ok {
		log.Fatalf("no baseline combatant %q in registry", cfg.PlayerName)
	}
	// Accepted bargains mutate the live player eagerly; after a restart the
	// baseline has to be replayed from the persisted ledger or the player
	// would keep the costs but lose the benefits.
	combat.ApplyLedger(&player, ledger)

	recorder := telemetry.NewRecorder(profile, profileRepo, kpiRecorder, time.Now)
	generator := negotiate.NewGenerator(rng, kpiRecorder, cfg.MaxRefresh)
	applier := &apply.UseCase{
		Ledger:   ledger,
		Repo:     ledgerRepo,
		Registry: registry,
		Player:   &player,
		Ladder:   ladder,
		Metrics:  kpiRecorder,
	}

	h := &httpadapter.Handler{
		Recorder:    recorder,
		Interpreter: interpret.UseCase{Rng: rng, Ladder: ladder},
		Generator:   generator,
		Applier:     applier,
		Resetter: reset.UseCase{
			Ledger:     ledger,
			LedgerRepo: ledgerRepo,
			Registry:   registry,
			Player:     &player,
			Recorder:   recorder,
			Generator:  generator,
		},
		Confirmer:     negotiate.NewConfirmer(time.Now),
		Catalog:       catalog,
		KPI:           kpiRecorder,
		TopN:          cfg.TopN,
		CardCount:     cfg.CardCount,
		ConfirmWindow: cfg.ConfirmWindow,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("duskpact server listening on %s (player: %s)", cfg.Addr, cfg.PlayerName)
	s.Spin()
}

// buildRepos opens postgres when a DSN is configured and falls back to
// volatile in-memory repos when it is missing or unreachable. Difficulty
// state is worth keeping but never worth refusing to start over.
func buildRepos(cfg config.Config) (ports.ProfileRepository, ports.LedgerRepository) {
	if cfg.DBDSN == "" {
		log.Print("DUSKPACT_DB_DSN not set, using in-memory repos")
		return memoryRepos()
	}
	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Printf("open postgres failed, using in-memory repos: %v", err)
		return memoryRepos()
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Printf("migrations failed, using in-memory repos: %v", err)
		return memoryRepos()
	}
	return gormrepo.NewProfileRepo(db), gormrepo.NewLedgerRepo(db)
}

func memoryRepos() (ports.ProfileRepository, ports.LedgerRepository) {
	store := memory.NewStore()
	return memory.NewProfileRepo(store), memory.NewLedgerRepo(store)
}

// loadProfile tolerates every load failure; the worst case is starting a
// session without history.
func loadProfile(ctx context.Context, repo ports.ProfileRepository) *behavior.Profile {
	loaded, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			log.Printf("profile load failed, starting empty: %v", err)
		}
		return behavior.NewProfile()
	}
	return &loaded
}
