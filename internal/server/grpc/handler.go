package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/teamkeeper/internal/api"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ListSessionKeys(ctx context.Context, req *api.ListSessionKeysRequest) (*api.ListSessionKeysResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.sessionKeys.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListSessionKeysResponse{Bundles: make([]*api.SessionKeysBundle, 0, len(items))}
	for _, b := range items {
		resp.Bundles = append(resp.Bundles, toAPI(b))
	}
	return resp, nil

}

func (s *GRPCServer) CreateSessionKeys(ctx context.Context, req *api.CreateSessionKeysRequest) (*api.CreateSessionKeysResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.sessionKeys.Create(ctx, userID, req.GetData())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.CreateSessionKeysResponse{Bundle: toAPI(b)}, nil

}

func (s *GRPCServer) UpdateSessionKeys(ctx context.Context, req *api.UpdateSessionKeysRequest) (*api.UpdateSessionKeysResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.GetModified().CheckValid(); err != nil {
		return nil, status.Error(codes.InvalidArgument, "modified is required")
	}

	b, err := s.sessionKeys.Update(ctx, userID, req.GetId(), req.GetModified().AsTime(), req.GetData())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.UpdateSessionKeysResponse{Bundle: toAPI(b)}, nil

}

func (s *GRPCServer) DeleteSessionKeys(ctx context.Context, req *api.DeleteSessionKeysRequest) (*api.DeleteSessionKeysResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessionKeys.Delete(ctx, userID, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.DeleteSessionKeysResponse{}, nil

}

func toAPI(b *models.SessionKeysBundle) *api.SessionKeysBundle {
	return &api.SessionKeysBundle{
		Id:       b.ID,
		UserId:   b.UserID,
		Data:     b.Data,
		Created:  timestamppb.New(b.CreatedAt),
		Modified: timestamppb.New(b.ModifiedAt),
	}
}

// toStatus maps service errors to gRPC statuses. Unexpected errors are
// logged and hidden from the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, "bundle was modified concurrently")
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
