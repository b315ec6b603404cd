// Package v1alpha1 handles the map generation grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MapService mapgen.Service
	Logger     *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.MapService == nil {
		return errors.InvalidArgument("map service is required")
	}
	return nil
}

// Handler implements MapServiceServer
type Handler struct {
	mapService mapgen.Service
	logger     *zap.Logger
}

var _ MapServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		mapService: cfg.MapService,
		logger:     logger.Named("grpc"),
	}, nil
}

// GenerateMap decodes the JSON selection in req and returns the rendered map.
// The suggested file name is sent in the x-map-filename header.
func (h *Handler) GenerateMap(
	ctx context.Context,
	req *wrapperspb.BytesValue,
) (*wrapperspb.StringValue, error) {
	if len(req.GetValue()) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("selection document is required"))
	}

	var selection dominions.MapRequest
	if err := json.Unmarshal(req.GetValue(), &selection); err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "selection document is not valid"))
	}

	out, err := h.mapService.GenerateMap(ctx, &mapgen.GenerateMapInput{Request: &selection})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := grpc.SetHeader(ctx, metadata.Pairs(HeaderMapFilename, out.Filename())); err != nil {
		h.logger.Warn("failed to set map filename header", zap.Error(err))
	}

	return wrapperspb.String(out.Content), nil
}
