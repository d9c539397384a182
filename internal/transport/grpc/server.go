package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

// FormService is the part of the form core the gRPC handlers call.
type FormService interface {
	Submit(ctx context.Context, mode forms.Mode, raw forms.RawFields) (*services.Outcome, error)
	CurrentSession(ctx context.Context) (*models.SessionMarker, error)
	ExistingSession(ctx context.Context) (*forms.Message, error)
	Feedback(event forms.Event, password, confirm string) (forms.FieldFeedback, error)
}

type GRPCServer struct {
	address string
	svc     FormService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, svc FormService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		svc:     svc,
	}
}

// newServer builds a grpc.Server with the form and health services.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))

	RegisterFormAuthServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
