package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName — имя сервиса в протоколе health. Пустое имя означает сервер целиком.
const ServiceName = "storefront.bff"

// Check проверяет зависимость, без которой сервис не может обслуживать запросы.
type Check func(ctx context.Context) error

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger) *GRPCServer {
	s := &GRPCServer{
		server: grpc.NewServer(),
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
	}

	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)
	s.setServing(false)

	return s
}

// Watch периодически выполняет check и переключает статус SERVING / NOT_SERVING.
// Возвращается при отмене ctx.
func (s *GRPCServer) Watch(ctx context.Context, interval time.Duration, timeout time.Duration, check Check) {
	probe := func() {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := check(checkCtx); err != nil {
			s.logger.Warnf("health check failed: %v", err)
			s.setServing(false)
			return
		}
		s.setServing(true)
	}

	probe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probe()
		case <-ctx.Done():
			return
		}
	}
}

func (s *GRPCServer) SetServing(serving bool) {
	s.setServing(serving)
}

func (s *GRPCServer) setServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(lis)
}

func (s *GRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// Stop переводит health в NOT_SERVING и ждёт завершения активных вызовов до дедлайна ctx.
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}
