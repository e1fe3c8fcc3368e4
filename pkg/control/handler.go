package control

import (
	"context"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/generated/api/proto"
	"github.com/core-tools/hsu-sjw/pkg/logging"

	"google.golang.org/grpc"
)

func RegisterGRPCServerHandler(grpcServerRegistrar grpc.ServiceRegistrar, handler domain.Contract, logger logging.Logger) {
	proto.RegisterUnitServiceServer(grpcServerRegistrar, &grpcServerHandler{
		handler: handler,
		logger:  logger,
	})
}

type grpcServerHandler struct {
	proto.UnimplementedUnitServiceServer
	handler domain.Contract
	logger  logging.Logger
}

func (h *grpcServerHandler) ListUnits(ctx context.Context, request *proto.ListUnitsRequest) (*proto.ListUnitsResponse, error) {
	units, err := h.handler.ListUnits(ctx)
	if err != nil {
		h.logger.Errorf("ListUnits server handler: %v", err)
		return nil, toStatus(err)
	}
	response := &proto.ListUnitsResponse{Units: make([]*proto.UnitInfo, 0, len(units))}
	for _, unit := range units {
		response.Units = append(response.Units, unitToProto(unit))
	}
	h.logger.Debugf("ListUnits server handler done, units: %d", len(units))
	return response, nil
}

func (h *grpcServerHandler) Query(ctx context.Context, request *proto.QueryRequest) (*proto.UnitInfo, error) {
	unit, err := h.handler.Query(ctx, request.Id)
	if err != nil {
		h.logger.Debugf("Query server handler, id: %s: %v", request.Id, err)
		return nil, toStatus(err)
	}
	return unitToProto(unit), nil
}

func (h *grpcServerHandler) Start(ctx context.Context, request *proto.OperationRequest) (*proto.OperationResponse, error) {
	return h.operation(ctx, domain.OperationStart, request, h.handler.Start)
}

func (h *grpcServerHandler) Stop(ctx context.Context, request *proto.OperationRequest) (*proto.OperationResponse, error) {
	return h.operation(ctx, domain.OperationStop, request, h.handler.Stop)
}

func (h *grpcServerHandler) Restart(ctx context.Context, request *proto.OperationRequest) (*proto.OperationResponse, error) {
	return h.operation(ctx, domain.OperationRestart, request, h.handler.Restart)
}

func (h *grpcServerHandler) Enable(ctx context.Context, request *proto.OperationRequest) (*proto.OperationResponse, error) {
	return h.operation(ctx, domain.OperationEnable, request, h.handler.Enable)
}

func (h *grpcServerHandler) Disable(ctx context.Context, request *proto.OperationRequest) (*proto.OperationResponse, error) {
	return h.operation(ctx, domain.OperationDisable, request, h.handler.Disable)
}

func (h *grpcServerHandler) operation(ctx context.Context, op domain.Operation, request *proto.OperationRequest,
	call func(ctx context.Context, id string) (bool, error)) (*proto.OperationResponse, error) {
	if request.ClientToken != "" {
		ctx = domain.WithClientToken(ctx, request.ClientToken)
	}
	accepted, err := call(ctx, request.Id)
	if err != nil {
		h.logger.Warnf("%s server handler, id: %s: %v", op, request.Id, err)
		return nil, toStatus(err)
	}
	h.logger.Debugf("%s server handler done, id: %s", op, request.Id)
	return &proto.OperationResponse{Accepted: accepted}, nil
}

func (h *grpcServerHandler) Subscribe(request *proto.SubscribeRequest, stream proto.UnitService_SubscribeServer) error {
	h.logger.Debugf("Subscribe server handler, topic: %s", request.Topic)
	err := h.handler.Subscribe(stream.Context(), request.Topic, func(event domain.Event) error {
		return stream.Send(eventToProto(event))
	})
	if err != nil {
		h.logger.Warnf("Subscribe server handler, topic: %s: %v", request.Topic, err)
		return toStatus(err)
	}
	return nil
}

func (h *grpcServerHandler) Logs(request *proto.LogsRequest, stream proto.UnitService_LogsServer) error {
	h.logger.Debugf("Logs server handler, id: %s", request.Id)
	err := h.handler.Logs(stream.Context(), request.Id, timeFromProto(request.Since), func(entry domain.LogEntry) error {
		return stream.Send(logEntryToProto(entry))
	})
	if err != nil {
		h.logger.Warnf("Logs server handler, id: %s: %v", request.Id, err)
		return toStatus(err)
	}
	return nil
}
