// Package contact implements the contact-form feature: it remembers the
// submitting user's email address so the form can prefill it later.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/handlers"
	"github.com/prompthub/prompthub/pkg/routes"
)

// Key is the persisted key for the remembered email address.
const Key = "userEmail"

// Domain errors for contact operations.
var (
	ErrEmailRequired = errors.New("email address is required")
	ErrEmailInvalid  = errors.New("email address is invalid")
	ErrNoEmail       = errors.New("no email address stored")
)

// MapHTTPStatus maps contact domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoEmail) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmailRequired) || errors.Is(err, ErrEmailInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Message is a contact-form submission.
type Message struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// System defines the public contract for contact operations.
type System interface {
	Handler() *Handler

	Submit(ctx context.Context, msg Message) error
	Email(ctx context.Context) (string, error)
}

type service struct {
	email  *collection.Value[string]
	logger *slog.Logger
}

// New creates a contact service implementing the System interface.
func New(backend collection.Backend, logger *slog.Logger) System {
	return &service{
		email:  collection.NewValue[string](backend, Key),
		logger: logger.With("system", "contact"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Submit validates and records a contact message. There is no delivery
// backend; the submission is logged and the sender's address persisted
// for prefill.
func (s *service) Submit(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Email) == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return ErrEmailInvalid
	}

	if err := s.email.Set(ctx, msg.Email); err != nil {
		return err
	}

	s.logger.Info("contact message received", "email", msg.Email, "subject", msg.Subject)
	return nil
}

func (s *service) Email(ctx context.Context) (string, error) {
	email, ok := s.email.Get(ctx)
	if !ok {
		return "", ErrNoEmail
	}
	return email, nil
}

// Handler provides HTTP endpoints for the contact form.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "contact"),
	}
}

// Routes returns the route group definition for contact endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/contact",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
			{Method: "GET", Pattern: "/email", Handler: h.Email},
		},
	}
}

// Submit accepts a contact message JSON body.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := handlers.DecodeJSON(r, &msg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Submit(r.Context(), msg); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, map[string]bool{"success": true})
}

// Email returns the previously stored email address.
func (h *Handler) Email(w http.ResponseWriter, r *http.Request) {
	email, err := h.sys.Email(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"email": email})
}
