package control

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/generated/api/proto"
	"github.com/core-tools/hsu-sjw/pkg/logging"

	"google.golang.org/grpc"
)

func NewGRPCClientGateway(grpcClientConnection grpc.ClientConnInterface, logger logging.Logger) domain.Contract {
	grpcClient := proto.NewUnitServiceClient(grpcClientConnection)
	return &grpcClientGateway{
		grpcClient: grpcClient,
		logger:     logger,
	}
}

type grpcClientGateway struct {
	grpcClient proto.UnitServiceClient
	logger     logging.Logger
}

func (gw *grpcClientGateway) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	response, err := gw.grpcClient.ListUnits(ctx, &proto.ListUnitsRequest{})
	if err != nil {
		gw.logger.Errorf("ListUnits client gateway: %v", err)
		return nil, fromStatus(err)
	}
	units := make([]domain.Unit, 0, len(response.Units))
	for _, info := range response.Units {
		units = append(units, unitFromProto(info))
	}
	gw.logger.Debugf("ListUnits client gateway done, units: %d", len(units))
	return units, nil
}

func (gw *grpcClientGateway) Query(ctx context.Context, id string) (domain.Unit, error) {
	response, err := gw.grpcClient.Query(ctx, &proto.QueryRequest{Id: id})
	if err != nil {
		gw.logger.Debugf("Query client gateway, id: %s: %v", id, err)
		return domain.Unit{}, fromStatus(err)
	}
	return unitFromProto(response), nil
}

type operationCall func(ctx context.Context, in *proto.OperationRequest, opts ...grpc.CallOption) (*proto.OperationResponse, error)

func (gw *grpcClientGateway) Start(ctx context.Context, id string) (bool, error) {
	return gw.operation(ctx, domain.OperationStart, id, gw.grpcClient.Start)
}

func (gw *grpcClientGateway) Stop(ctx context.Context, id string) (bool, error) {
	return gw.operation(ctx, domain.OperationStop, id, gw.grpcClient.Stop)
}

func (gw *grpcClientGateway) Restart(ctx context.Context, id string) (bool, error) {
	return gw.operation(ctx, domain.OperationRestart, id, gw.grpcClient.Restart)
}

func (gw *grpcClientGateway) Enable(ctx context.Context, id string) (bool, error) {
	return gw.operation(ctx, domain.OperationEnable, id, gw.grpcClient.Enable)
}

func (gw *grpcClientGateway) Disable(ctx context.Context, id string) (bool, error) {
	return gw.operation(ctx, domain.OperationDisable, id, gw.grpcClient.Disable)
}

func (gw *grpcClientGateway) operation(ctx context.Context, op domain.Operation, id string, call operationCall) (bool, error) {
	response, err := call(ctx, &proto.OperationRequest{
		Id:          id,
		ClientToken: domain.ClientToken(ctx),
	})
	if err != nil {
		gw.logger.Debugf("%s client gateway, id: %s: %v", op, id, err)
		return false, fromStatus(err)
	}
	gw.logger.Debugf("%s client gateway done, id: %s", op, id)
	return response.Accepted, nil
}

func (gw *grpcClientGateway) Subscribe(ctx context.Context, topic string, fn func(domain.Event) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := gw.grpcClient.Subscribe(ctx, &proto.SubscribeRequest{Topic: topic})
	if err != nil {
		gw.logger.Errorf("Subscribe client gateway: %v", err)
		return fromStatus(err)
	}
	return receive(ctx, gw.logger, "Subscribe", stream.Recv, func(event *proto.UnitEvent) error {
		return fn(eventFromProto(event))
	})
}

func (gw *grpcClientGateway) Logs(ctx context.Context, id string, since time.Time, fn func(domain.LogEntry) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := gw.grpcClient.Logs(ctx, &proto.LogsRequest{Id: id, Since: timeToProto(since)})
	if err != nil {
		gw.logger.Errorf("Logs client gateway: %v", err)
		return fromStatus(err)
	}
	return receive(ctx, gw.logger, "Logs", stream.Recv, func(entry *proto.LogEntry) error {
		return fn(logEntryFromProto(entry))
	})
}

// receive feeds every streamed message to deliver until the server
// finishes, ctx ends or deliver fails.
func receive[M any](ctx context.Context, logger logging.Logger, name string, recv func() (M, error), deliver func(M) error) error {
	for {
		message, err := recv()
		if err != nil {
			if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
				logger.Debugf("%s client gateway done", name)
				return nil
			}
			logger.Warnf("%s client gateway: %v", name, err)
			return fromStatus(err)
		}
		if err := deliver(message); err != nil {
			return err
		}
	}
}
