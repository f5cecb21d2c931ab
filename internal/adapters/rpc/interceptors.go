package rpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"weathersvc.app/internal/ports"
)

// RequestIDMetadataKey carries the request id in incoming and header metadata
const RequestIDMetadataKey = "x-request-id"

type requestIDKey struct{}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestIDInterceptor reuses the caller's x-request-id or assigns a UUID and
// echoes it back in the response header
func requestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(RequestIDMetadataKey); len(values) > 0 {
				id = values[0]
			}
		}
		if id == "" {
			id = uuid.New().String()
		}

		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, id))
		return handler(context.WithValue(ctx, requestIDKey{}, id), req)
	}
}

func loggingInterceptor(logger ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []ports.Field{
			ports.F("request_id", requestIDFromContext(ctx)),
			ports.F("method", info.FullMethod),
			ports.F("code", status.Code(err).String()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
		}
		if status.Code(err) == codes.Internal {
			logger.Warn("gRPC call failed", fields...)
		} else {
			logger.Debug("gRPC call served", fields...)
		}
		return resp, err
	}
}

// recoveryInterceptor turns a handler panic into codes.Internal
func recoveryInterceptor(logger ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("gRPC handler panicked",
					ports.F("method", info.FullMethod),
					ports.F("panic", r),
					ports.F("stack", string(debug.Stack())))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
