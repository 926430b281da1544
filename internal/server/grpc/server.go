// Package grpc exposes the session keys service over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/api"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
	"google.golang.org/grpc"
)

// SessionKeysService is the business logic the handlers delegate to.
type SessionKeysService interface {
	List(ctx context.Context, userID string) ([]*models.SessionKeysBundle, error)
	Create(ctx context.Context, userID, data string) (*models.SessionKeysBundle, error)
	Update(ctx context.Context, userID, id string, expectedModified time.Time, data string) (*models.SessionKeysBundle, error)
	Delete(ctx context.Context, userID, id string) error
}

type GRPCServer struct {
	api.UnimplementedSessionKeysServiceServer
	address     string
	sessionKeys SessionKeysService
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, sk SessionKeysService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		sessionKeys: sk,
		jwtSecret:   []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	// registers service
	api.RegisterSessionKeysServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
