package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/factory"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

var interceptorLogger = factory.NewModuleLogger("grpc")

type requestIDContextKey struct{}

type requestRecorder interface {
	ObserveGRPCRequest(method, code string)
}

// RequestIDInterceptor propagates x-request-id, generating one when the caller did not send it.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := requestIDFromMetadata(ctx)
		if requestID == "" {
			requestID = "grpc-" + uuid.NewString()
		}

		ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

		return handler(ctx, req)
	}
}

// LoggingInterceptor writes one grpc_request entry per call. recorder may be nil.
func LoggingInterceptor(recorder requestRecorder) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)
		code := status.Code(err)

		if recorder != nil {
			recorder.ObserveGRPCRequest(info.FullMethod, code.String())
		}

		entry := loggerWithContext(ctx).WithFields(logrus.Fields{
			"method":     info.FullMethod,
			"grpc_code":  code.String(),
			"latency":    latency.String(),
			"latency_ns": latency.Nanoseconds(),
		})
		switch {
		case err == nil:
			entry.Info("grpc_request")
		case code == codes.Internal || code == codes.Unknown:
			entry.WithError(err).Error("grpc_request")
		default:
			entry.WithError(err).Warn("grpc_request")
		}
		return resp, err
	}
}

func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (_ any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				loggerWithContext(ctx).WithFields(logrus.Fields{
					"method": info.FullMethod,
					"panic":  rec,
					"stack":  string(debug.Stack()),
				}).Error("grpc_panic_recovered")
				err = status.Error(codes.Internal, "internal server error")
			}
		}()

		return handler(ctx, req)
	}
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

func loggerWithContext(ctx context.Context) logrus.FieldLogger {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return interceptorLogger.WithField("request_id", requestID)
	}
	return interceptorLogger
}

func requestIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(requestIDHeader); len(values) > 0 {
		return values[0]
	}
	return ""
}
