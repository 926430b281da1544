package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/api"
	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const requestTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.SessionKeysServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL and authenticates every
// call with accessToken. Extra dial options are appended, which tests use
// to plug in an in-memory listener.
func NewGRPCClient(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewSessionKeysServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) ListSessionKeys(ctx context.Context) ([]*models.SessionKeysBundle, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.ListSessionKeys(ctx, &api.ListSessionKeysRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]*models.SessionKeysBundle, 0, len(resp.GetBundles()))
	for _, b := range resp.GetBundles() {
		out = append(out, fromAPI(b))
	}
	return out, nil

}

func (s *GRPCClient) CreateSessionKeys(ctx context.Context, data string) (*models.SessionKeysBundle, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.CreateSessionKeys(ctx, &api.CreateSessionKeysRequest{Data: data})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPI(resp.GetBundle()), nil

}

func (s *GRPCClient) UpdateSessionKeys(ctx context.Context, id string, modified time.Time, data string) (*models.SessionKeysBundle, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.UpdateSessionKeys(ctx, &api.UpdateSessionKeysRequest{Id: id, Modified: timestamppb.New(modified), Data: data})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPI(resp.GetBundle()), nil

}

func (s *GRPCClient) DeleteSessionKeys(ctx context.Context, id string) error {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if _, err := s.client.DeleteSessionKeys(ctx, &api.DeleteSessionKeysRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil

}

func fromAPI(b *api.SessionKeysBundle) *models.SessionKeysBundle {
	return &models.SessionKeysBundle{
		ID:       b.GetId(),
		Data:     b.GetData(),
		Created:  asTime(b.GetCreated()),
		Modified: asTime(b.GetModified()),
	}
}

// asTime keeps an absent timestamp as the zero time instead of the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Aborted:
		return ErrConflict
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
