package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

// FormService is the part of the form core the handlers call.
type FormService interface {
	Submit(ctx context.Context, mode forms.Mode, raw forms.RawFields) (*services.Outcome, error)
	ExistingSession(ctx context.Context) (*forms.Message, error)
	CurrentSession(ctx context.Context) (*models.SessionMarker, error)
	Feedback(event forms.Event, password, confirm string) (forms.FieldFeedback, error)
}

// FormsHandler exposes the form endpoints.
type FormsHandler struct {
	svc FormService
}

func NewFormsHandler(svc FormService) *FormsHandler {
	return &FormsHandler{svc: svc}
}

type messageDTO struct {
	Kind  forms.Kind `json:"kind"`
	Text  string     `json:"text"`
	Class string     `json:"class"`
	Field string     `json:"field,omitempty"`
}

func toMessageDTO(m forms.Message) messageDTO {
	return messageDTO{Kind: m.Kind, Text: m.Text, Class: m.Class(), Field: m.Field}
}

type redirectDTO struct {
	View    services.View `json:"view"`
	DelayMs int64         `json:"delayMs"`
	Notice  string        `json:"notice,omitempty"`
}

type submitResponse struct {
	OK       bool         `json:"ok"`
	Mode     forms.Mode   `json:"mode"`
	Message  messageDTO   `json:"message"`
	Field    string       `json:"field,omitempty"`
	Redirect *redirectDTO `json:"redirect,omitempty"`
}

// Submit handles POST /login and POST /register.
func (h *FormsHandler) Submit(c *fiber.Ctx) error {
	mode, ok := forms.ModeFromAction(c.Path())
	if !ok {
		return fiber.NewError(http.StatusNotFound, "unknown form")
	}

	var raw forms.RawFields
	if err := c.BodyParser(&raw); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	out, err := h.svc.Submit(c.UserContext(), mode, raw)
	if err != nil {
		return err
	}

	resp := submitResponse{OK: out.OK, Mode: out.Mode, Message: toMessageDTO(out.Message)}
	if out.Intent != nil {
		resp.Redirect = &redirectDTO{
			View:    out.Intent.View,
			DelayMs: out.Intent.Delay.Milliseconds(),
			Notice:  out.Intent.Notice,
		}
	}
	if ve, ok := forms.AsValidationError(out.Reason); ok {
		resp.Field = ve.Field
	}

	return c.Status(submitStatus(out)).JSON(resp)
}

func submitStatus(out *services.Outcome) int {
	if out.OK {
		if out.Mode == forms.ModeRegister {
			return http.StatusCreated
		}
		return http.StatusOK
	}
	switch {
	case errors.Is(out.Reason, common.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(out.Reason, common.ErrNoSuchUser):
		return http.StatusNotFound
	case errors.Is(out.Reason, common.ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusUnprocessableEntity
	}
}

type feedbackRequest struct {
	Event           forms.Event `json:"event" form:"event"`
	Password        string      `json:"password" form:"password"`
	ConfirmPassword string      `json:"confirm_password" form:"confirm_password"`
}

type feedbackResponse struct {
	Field   string       `json:"field"`
	Action  forms.Action `json:"action"`
	Message *messageDTO  `json:"message,omitempty"`
	Border  forms.Border `json:"border,omitempty"`
}

// Feedback handles POST /feedback.
func (h *FormsHandler) Feedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	fb, err := h.svc.Feedback(req.Event, req.Password, req.ConfirmPassword)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	resp := feedbackResponse{Field: fb.Field, Action: fb.Action, Border: fb.Border}
	if fb.Action == forms.ActionShow {
		m := toMessageDTO(fb.Message)
		resp.Message = &m
	}
	return c.JSON(resp)
}

// Session handles GET /session.
func (h *FormsHandler) Session(c *fiber.Ctx) error {
	ctx := c.UserContext()

	marker, err := h.svc.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if marker == nil {
		return c.JSON(fiber.Map{"loggedIn": false})
	}

	msg, err := h.svc.ExistingSession(ctx)
	if err != nil {
		return err
	}
	resp := fiber.Map{"loggedIn": true, "session": marker}
	if msg != nil {
		resp["message"] = toMessageDTO(*msg)
	}
	return c.JSON(resp)
}

// HealthHandler responds to liveness probes.
type HealthHandler struct {
	serviceName string
	version     string
}

func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}
