package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "nutricat/docs"
	"nutricat/internal/adapters/recognition/mockai"
	mem "nutricat/internal/adapters/storage/memory"
	pg "nutricat/internal/adapters/storage/postgres"
	"nutricat/internal/domain/diet"
	"nutricat/internal/domain/pet"
	"nutricat/internal/domain/quests"
	"nutricat/internal/domain/reports"
	"nutricat/internal/domain/shop"
	"nutricat/internal/middleware"
	"nutricat/internal/platform/locks"
	"nutricat/internal/ports/auth"
	"nutricat/internal/ports/recognition"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, reemplaza al reconocedor mock.
	Recognizer recognition.FoodRecognizer

	// Zona para las claves de día calendario. nil = UTC.
	Location *time.Location
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo    pet.Repository
		dietRepo   diet.Repository
		claimsRepo quests.ClaimRepository
		itemsRepo  shop.ItemRepository
		invRepo    shop.InventoryRepository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetRepo(db)
		dietRepo = pg.NewDietRepo(db)
		claimsRepo = pg.NewQuestClaimsRepo(db)
		itemsRepo = pg.NewItemsRepo(db)
		invRepo = pg.NewInventoryRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		dietRepo = mem.NewDietRepo()
		claimsRepo = mem.NewQuestClaimsRepo()
		itemsRepo = mem.NewItemsRepo()
		invRepo = mem.NewInventoryRepo()
	}

	// El catálogo vive en storage para que la tienda y el inventario
	// lean la misma fuente sin importar el backend.
	_ = itemsRepo.Seed(context.Background(), shop.DefaultCatalog())

	recognizer := opts.Recognizer
	if recognizer == nil {
		recognizer = mockai.New(time.Now().UnixNano())
	}

	// Services por módulo
	petsSvc := pet.NewService(petRepo, locks.NewManager(), opts.Location)
	dietSvc := diet.NewService(dietRepo, petsSvc, opts.Location)
	questsSvc := quests.NewService(petsSvc, claimsRepo, dietSvc)
	shopSvc := shop.NewService(petsSvc, itemsRepo, invRepo)
	reportsSvc := reports.NewService(dietSvc, opts.Location)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		pet.RegisterRoutes(api, petsSvc)
		diet.RegisterRoutes(api, dietSvc, petsSvc, recognizer)
		quests.RegisterRoutes(api, questsSvc)
		shop.RegisterRoutes(api, shopSvc)
		reports.RegisterRoutes(api, reportsSvc)
	})

	return r
}
