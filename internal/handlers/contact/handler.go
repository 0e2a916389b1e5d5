package contact

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/contact/model/dto"
	"atrium/internal/domains/contact/service"
	"atrium/shared/constant"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ContactMessage
	otel    otel.Otel
}

func New(service service.ContactMessage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact-messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContactMessage)
	})
}

func (handler *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactMessage")
	defer scope.End()

	var req dto.CreateContactMessageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithJSON(w, http.StatusCreated, message)
}
