package wire

import (
	"time"

	"jua-kazi/internal/adaptor"
	"jua-kazi/internal/data/repository"
	"jua-kazi/internal/usecase"
	"jua-kazi/pkg/assistant"
	"jua-kazi/pkg/media"
	"jua-kazi/pkg/middleware"
	"jua-kazi/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes over repo
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	suggester := assistant.NewClient(config.Assistant, logger)
	if !suggester.Enabled() {
		logger.Warn("No Gemini API key configured; suggestions and bio rewrites are disabled")
	}
	debouncer := assistant.NewDebouncer(time.Duration(config.Assistant.DebounceMillis) * time.Millisecond)

	var uploader media.Uploader
	if config.Cloudinary.Enabled() {
		u, err := media.NewCloudinaryUploader(config.Cloudinary, logger)
		if err != nil {
			logger.Error("Image uploads disabled", zap.Error(err))
		} else {
			uploader = u
		}
	}

	service := usecase.NewService(
		repo,
		config,
		usecase.NewAssistantService(suggester, debouncer, logger),
		usecase.NewImageService(uploader, logger),
		logger,
	)

	return WiringWithService(service, repo, config, logger)
}

// WiringWithService routes an already built service; tests use it to swap
// collaborators.
func WiringWithService(service *usecase.Service, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.Session(repo.Session, repo.User, logger))

	r.Get("/health", handler.Meta.Health)

	wireMeta(r, handler.Meta)
	wireAccount(r, handler.Account)
	wireProvider(r, handler.Provider)
	wireAssistant(r, handler.Assistant)
	wireAdmin(r, handler.Admin, repo, logger)

	return r
}
