package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

func stringField(in *structpb.Struct, name string) string {
	if v, ok := in.GetFields()[name]; ok {
		return v.GetStringValue()
	}
	return ""
}

func messageValue(m forms.Message) map[string]any {
	out := map[string]any{
		"kind":  string(m.Kind),
		"text":  m.Text,
		"class": m.Class(),
	}
	if m.Field != "" {
		out["field"] = m.Field
	}
	return out
}

// Submit expects "mode" ("login" or "register") or a form "action" path,
// plus the raw field values under their form names.
func (s *GRPCServer) Submit(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	mode := forms.Mode(stringField(in, "mode"))
	if mode == "" {
		m, ok := forms.ModeFromAction(stringField(in, "action"))
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "mode or action required")
		}
		mode = m
	}

	raw := forms.RawFields{
		FullName:        stringField(in, forms.FieldFullName),
		Email:           stringField(in, forms.FieldEmail),
		Password:        stringField(in, forms.FieldPassword),
		ConfirmPassword: stringField(in, forms.FieldConfirmPassword),
	}

	out, err := s.svc.Submit(ctx, mode, raw)
	if err != nil {
		if errors.Is(err, common.ErrUnknownMode) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, services.UserMessage(err))
	}
	if !out.OK {
		return nil, rejectionStatus(out)
	}

	resp := map[string]any{
		"ok":      true,
		"mode":    string(out.Mode),
		"message": messageValue(out.Message),
	}
	if out.Intent != nil {
		redirect := map[string]any{
			"view":    string(out.Intent.View),
			"delayMs": out.Intent.Delay.Milliseconds(),
		}
		if out.Intent.Notice != "" {
			redirect["notice"] = out.Intent.Notice
		}
		resp["redirect"] = redirect
	}
	return structpb.NewStruct(resp)
}

func rejectionStatus(out *services.Outcome) error {
	code := codes.InvalidArgument
	switch {
	case errors.Is(out.Reason, common.ErrDuplicateEmail):
		code = codes.AlreadyExists
	case errors.Is(out.Reason, common.ErrNoSuchUser):
		code = codes.NotFound
	case errors.Is(out.Reason, common.ErrWrongPassword):
		code = codes.Unauthenticated
	}
	return status.Error(code, out.Message.Text)
}

// Feedback expects "event", "password" and "confirm_password".
func (s *GRPCServer) Feedback(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	fb, err := s.svc.Feedback(
		forms.Event(stringField(in, "event")),
		stringField(in, forms.FieldPassword),
		stringField(in, forms.FieldConfirmPassword),
	)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp := map[string]any{
		"field":  fb.Field,
		"action": string(fb.Action),
	}
	if fb.Border != forms.BorderUnchanged {
		resp["border"] = string(fb.Border)
	}
	if fb.Action == forms.ActionShow {
		resp["message"] = messageValue(fb.Message)
	}
	return structpb.NewStruct(resp)
}

// CurrentSession ignores its input.
func (s *GRPCServer) CurrentSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	marker, err := s.svc.CurrentSession(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, services.UserMessage(err))
	}
	if marker == nil {
		return structpb.NewStruct(map[string]any{"loggedIn": false})
	}

	resp := map[string]any{
		"loggedIn": true,
		"session": map[string]any{
			"email":      marker.Email,
			"fullnames":  marker.FullName,
			"loggedInAt": marker.LoggedInAt.String(),
		},
	}

	msg, err := s.svc.ExistingSession(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, services.UserMessage(err))
	}
	if msg != nil {
		resp["message"] = messageValue(*msg)
	}
	return structpb.NewStruct(resp)
}
