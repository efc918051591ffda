package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	authAPI "quantlab_backend/internal/api/auth"
	kellyAPI "quantlab_backend/internal/api/kelly"
	presetAPI "quantlab_backend/internal/api/preset"
	pricingAPI "quantlab_backend/internal/api/pricing"
	spectralAPI "quantlab_backend/internal/api/spectral"
	tutorialAPI "quantlab_backend/internal/api/tutorial"
	vwapAPI "quantlab_backend/internal/api/vwap"
	"quantlab_backend/internal/config"
	"quantlab_backend/internal/config/env"
	"quantlab_backend/internal/middleware"
	"quantlab_backend/internal/repository"
	"quantlab_backend/internal/repository/auth_repo"
	"quantlab_backend/internal/repository/preset_repo"
	"quantlab_backend/internal/repository/user_repo"
	"quantlab_backend/internal/service"
	authServ "quantlab_backend/internal/service/auth"
	kellyServ "quantlab_backend/internal/service/kelly"
	presetServ "quantlab_backend/internal/service/preset"
	pricingServ "quantlab_backend/internal/service/pricing"
	spectralServ "quantlab_backend/internal/service/spectral"
	tutorialServ "quantlab_backend/internal/service/tutorial"
	vwapServ "quantlab_backend/internal/service/vwap"
)

// Имена туториалов в config.yaml
const (
	tutorialPricing  = "option-pricing"
	tutorialSpectral = "spectral-analysis"
	tutorialKelly    = "kelly-criterion"
	tutorialVWAP     = "vwap"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Tutorial parameter declarations
	tutorialCfgs []config.TutorialConfig
	tutorialServ service.TutorialService
	tutorialHand *tutorialAPI.Handler

	// Calculation bits
	pricingServ  service.PricingService
	pricingHand  *pricingAPI.Handler
	spectralServ service.SpectralService
	spectralHand *spectralAPI.Handler
	kellyServ    service.KellyService
	kellyHand    *kellyAPI.Handler
	vwapServ     service.VWAPService
	vwapHand     *vwapAPI.Handler

	// Preset bits
	presetRepo repository.PresetRepository
	presetServ service.PresetService
	presetHand *presetAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) TutorialCfgs() []config.TutorialConfig {
	if sp.tutorialCfgs == nil {
		cfgs, err := env.NewTutorialConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get tutorial config: " + err.Error())
		}
		sp.tutorialCfgs = cfgs
	}
	return sp.tutorialCfgs
}

// tutorialCfg - декларация параметров туториала по имени.
// Отсутствие туториала в config.yaml - ошибка конфигурации
func (sp *ServiceProvider) tutorialCfg(name string) config.TutorialConfig {
	for _, cfg := range sp.TutorialCfgs() {
		if cfg.Name() == name {
			return cfg
		}
	}
	panic("tutorial not found in config: " + name)
}

func (sp *ServiceProvider) TutorialService() service.TutorialService {
	if sp.tutorialServ == nil {
		sp.tutorialServ = tutorialServ.NewTutorialService(sp.TutorialCfgs())
	}
	return sp.tutorialServ
}

func (sp *ServiceProvider) TutorialHandler() *tutorialAPI.Handler {
	if sp.tutorialHand == nil {
		sp.tutorialHand = tutorialAPI.NewHandler(tutorialAPI.HandlerDeps{Serv: sp.TutorialService()})
	}
	return sp.tutorialHand
}

func (sp *ServiceProvider) PricingService() service.PricingService {
	if sp.pricingServ == nil {
		sp.pricingServ = pricingServ.NewPricingService(sp.tutorialCfg(tutorialPricing))
	}
	return sp.pricingServ
}

func (sp *ServiceProvider) PricingHandler() *pricingAPI.Handler {
	if sp.pricingHand == nil {
		sp.pricingHand = pricingAPI.NewHandler(pricingAPI.HandlerDeps{Serv: sp.PricingService()})
	}
	return sp.pricingHand
}

func (sp *ServiceProvider) SpectralService() service.SpectralService {
	if sp.spectralServ == nil {
		sp.spectralServ = spectralServ.NewSpectralService(sp.tutorialCfg(tutorialSpectral))
	}
	return sp.spectralServ
}

func (sp *ServiceProvider) SpectralHandler() *spectralAPI.Handler {
	if sp.spectralHand == nil {
		sp.spectralHand = spectralAPI.NewHandler(spectralAPI.HandlerDeps{Serv: sp.SpectralService()})
	}
	return sp.spectralHand
}

func (sp *ServiceProvider) KellyService() service.KellyService {
	if sp.kellyServ == nil {
		sp.kellyServ = kellyServ.NewKellyService(sp.tutorialCfg(tutorialKelly))
	}
	return sp.kellyServ
}

func (sp *ServiceProvider) KellyHandler() *kellyAPI.Handler {
	if sp.kellyHand == nil {
		sp.kellyHand = kellyAPI.NewHandler(kellyAPI.HandlerDeps{Serv: sp.KellyService()})
	}
	return sp.kellyHand
}

func (sp *ServiceProvider) VWAPService() service.VWAPService {
	if sp.vwapServ == nil {
		sp.vwapServ = vwapServ.NewVWAPService(sp.tutorialCfg(tutorialVWAP))
	}
	return sp.vwapServ
}

func (sp *ServiceProvider) VWAPHandler() *vwapAPI.Handler {
	if sp.vwapHand == nil {
		sp.vwapHand = vwapAPI.NewHandler(vwapAPI.HandlerDeps{Serv: sp.VWAPService()})
	}
	return sp.vwapHand
}

func (sp *ServiceProvider) PresetRepository(ctx context.Context) repository.PresetRepository {
	if sp.presetRepo == nil {
		sp.presetRepo = preset_repo.NewPresetRepository(sp.DBClient(ctx))
	}
	return sp.presetRepo
}

func (sp *ServiceProvider) PresetService(ctx context.Context) service.PresetService {
	if sp.presetServ == nil {
		sp.presetServ = presetServ.NewPresetService(sp.PresetRepository(ctx), sp.TXManager(ctx))
	}
	return sp.presetServ
}

func (sp *ServiceProvider) PresetHandler(ctx context.Context) *presetAPI.Handler {
	if sp.presetHand == nil {
		sp.presetHand = presetAPI.NewHandler(presetAPI.HandlerDeps{Serv: sp.PresetService(ctx)})
	}
	return sp.presetHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Tutorial declarations for the SPA
		tutorialHandler := sp.TutorialHandler()
		r.Route("/tutorials", func(rr chi.Router) {
			rr.Get("/", tutorialHandler.List)
			rr.Get("/{name}/defaults", tutorialHandler.Defaults)
		})

		// Calculation endpoints, one group per tutorial
		r.Route("/pricing", func(rr chi.Router) {
			rr.Post("/calculate", sp.PricingHandler().Calculate)
		})
		r.Route("/spectral", func(rr chi.Router) {
			rr.Post("/calculate", sp.SpectralHandler().Calculate)
			rr.Post("/nyquist", sp.SpectralHandler().Nyquist)
		})
		r.Route("/kelly", func(rr chi.Router) {
			rr.Post("/calculate", sp.KellyHandler().Calculate)
		})
		r.Route("/vwap", func(rr chi.Router) {
			rr.Post("/calculate", sp.VWAPHandler().Calculate)
		})

		// Preset endpoints, доступны только с access токеном
		presetHandler := sp.PresetHandler(ctx)
		r.Route("/presets", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/", presetHandler.Save)
			rr.Get("/", presetHandler.List)
			rr.Get("/{id}", presetHandler.Get)
			rr.Delete("/{id}", presetHandler.Delete)
		})

		sp.router = r
	}

	return sp.router
}
