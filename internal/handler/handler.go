package handler

import (
	"github.com/communityfoodshare/agency-manager/backend/internal/config"
	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// Store is the persistence surface the handlers depend on.
// *repository.Repository is the production implementation.
type Store interface {
	CreateAgency(agency *domain.Agency) error
	GetAgencyByID(id int64) (*domain.Agency, error)
	ReplaceAgency(id int64, agency *domain.Agency) error
	GetAllAgencies() ([]*domain.Agency, error)

	GetUserByID(id int64) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	UpdateUserPassword(id int64, passwordHash string) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  Store
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo Store, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in caller
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.myInfo).Get("/my-info", h.GetMyInfo)

		r.Route("/agency", func(r chi.Router) {
			r.Put("/", h.CreateAgency)
			r.Get("/", h.ListAgencies)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.agencyRecord)
				r.Get("/", h.GetAgency)
				r.Post("/", h.UpdateAgency)
			})
		})
	})
}
