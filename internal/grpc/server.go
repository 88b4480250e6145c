package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/services"
)

const errorDomain = "showcatalog"

// server implements the ShowCatalogServer interface
type server struct {
	catalog services.Catalog
	logger  zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(catalog services.Catalog) ShowCatalogServer {
	return &server{
		catalog: catalog,
		logger:  config.GetLogger(),
	}
}

// Search implements ShowCatalogServer.Search
func (s *server) Search(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	term := req.GetValue()
	s.logger.Debug().Str("term", term).Msg("Search called")

	shows, err := s.catalog.SearchShows(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search shows")
		return nil, toStatus(ctx, err, "failed to search shows")
	}

	values := make([]*structpb.Value, len(shows))
	for i, show := range shows {
		values[i] = convertShowToProto(show)
	}

	s.logger.Debug().Str("term", term).Int("count", len(values)).Msg("Search completed")
	return &structpb.ListValue{Values: values}, nil
}

// ListEpisodes implements ShowCatalogServer.ListEpisodes
func (s *server) ListEpisodes(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	showID := int(req.GetValue())
	s.logger.Debug().Int("show_id", showID).Msg("ListEpisodes called")

	episodes, err := s.catalog.ListEpisodes(ctx, showID)
	if err != nil {
		s.logger.Error().Err(err).Int("show_id", showID).Msg("Failed to list episodes")
		return nil, toStatus(ctx, err, "failed to list episodes")
	}

	values := make([]*structpb.Value, len(episodes))
	for i, episode := range episodes {
		values[i] = convertEpisodeToProto(episode)
	}

	s.logger.Debug().Int("show_id", showID).Int("count", len(values)).Msg("ListEpisodes completed")
	return &structpb.ListValue{Values: values}, nil
}

// toStatus maps a catalog error to a gRPC status carrying an ErrorInfo detail.
// A finished caller context wins over the error kind: the client's own timeout
// also surfaces as a canceled request.
func toStatus(ctx context.Context, err error, msg string) error {
	code := codes.Internal
	info := &errdetails.ErrorInfo{Domain: errorDomain, Reason: "INTERNAL"}

	var upstream *apperrors.ErrUpstream
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		code = codes.Canceled
		info.Reason = "CANCELED"
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		code = codes.DeadlineExceeded
		info.Reason = "DEADLINE_EXCEEDED"
	case errors.As(err, &upstream):
		code = codes.Unavailable
		if upstream.NotFound() {
			code = codes.NotFound
		}
		info.Reason = "UPSTREAM_STATUS"
		info.Metadata = map[string]string{
			"endpoint":    upstream.Endpoint,
			"status_code": strconv.Itoa(upstream.StatusCode),
		}
	case errors.Is(err, &apperrors.ErrNetworkFailure{}):
		code = codes.Unavailable
		info.Reason = "NETWORK_FAILURE"
	case errors.Is(err, &apperrors.ErrShapeMismatch{}):
		info.Reason = "SHAPE_MISMATCH"
	}

	st := status.Newf(code, "%s: %v", msg, err)
	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}
	return st.Err()
}
