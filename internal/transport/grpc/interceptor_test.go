package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/melusi-muna/login-register-forms/internal/logging"
)

func TestRequestIDInterceptor_UsesIncomingID(t *testing.T) {
	s := NewGRPCServer("", logging.Nop(), nil)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDHeader, "abc"))

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = requestIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.requestIDInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: MethodSubmit}, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "abc", seen)
}

func TestRequestIDInterceptor_GeneratesID(t *testing.T) {
	s := NewGRPCServer("", logging.Nop(), nil)

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = requestIDFromContext(ctx)
		return nil, nil
	}

	_, err := s.requestIDInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: MethodSubmit}, h)
	require.NoError(t, err)
	assert.Len(t, seen, 36)
}
