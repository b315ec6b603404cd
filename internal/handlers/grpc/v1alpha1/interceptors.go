package v1alpha1

import (
	"context"
	"fmt"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

// InterceptorLogger adapts a zap logger to the grpc middleware logger
func InterceptorLogger(l *zap.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		f := make([]zap.Field, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			key := fmt.Sprint(fields[i])
			f = append(f, zap.Any(key, fields[i+1]))
		}

		logger := l.WithOptions(zap.AddCallerSkip(1)).With(f...)
		switch lvl {
		case grpc_logging.LevelDebug:
			logger.Debug(msg)
		case grpc_logging.LevelInfo:
			logger.Info(msg)
		case grpc_logging.LevelWarn:
			logger.Warn(msg)
		case grpc_logging.LevelError:
			logger.Error(msg)
		default:
			logger.Info(msg, zap.Any("level", lvl))
		}
	})
}

// ServerOptions returns the interceptor chain used by the map server.
// Panics in handlers surface to the caller as internal errors.
func ServerOptions(l *zap.Logger) []grpc.ServerOption {
	logger := InterceptorLogger(l)
	recovery := grpc_recovery.WithRecoveryHandlerContext(func(_ context.Context, p any) error {
		l.Error("recovered from panic", zap.Any("panic", p))
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
			),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
			),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	}
}
