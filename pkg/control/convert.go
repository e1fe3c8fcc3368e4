package control

import (
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/generated/api/proto"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Zero times travel as unset timestamps.
func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func statusToProto(status domain.Status) *proto.UnitStatus {
	return &proto.UnitStatus{
		State:          string(status.State),
		SubState:       status.SubState,
		Enabled:        status.Enabled,
		UnitFileState:  status.UnitFileState,
		LastTransition: timeToProto(status.LastTransition),
	}
}

func statusFromProto(status *proto.UnitStatus) domain.Status {
	return domain.Status{
		State:          domain.UnitState(status.GetState()),
		SubState:       status.GetSubState(),
		Enabled:        status.GetEnabled(),
		UnitFileState:  status.GetUnitFileState(),
		LastTransition: timeFromProto(status.GetLastTransition()),
	}
}

func unitToProto(unit domain.Unit) *proto.UnitInfo {
	return &proto.UnitInfo{
		Id:          unit.ID,
		Name:        unit.Name,
		Description: unit.Description,
		Status:      statusToProto(unit.Status),
	}
}

func unitFromProto(info *proto.UnitInfo) domain.Unit {
	return domain.Unit{
		ID:          info.GetId(),
		Name:        info.GetName(),
		Description: info.GetDescription(),
		Status:      statusFromProto(info.GetStatus()),
	}
}

func eventToProto(event domain.Event) *proto.UnitEvent {
	return &proto.UnitEvent{
		Topic:          event.Topic,
		Seq:            event.Seq,
		Id:             event.Record.UnitID,
		PreviousStatus: statusToProto(event.Record.Previous),
		NewStatus:      statusToProto(event.Record.New),
		ObservedAt:     timeToProto(event.Record.ObservedAt),
	}
}

func eventFromProto(event *proto.UnitEvent) domain.Event {
	return domain.Event{
		Topic: event.GetTopic(),
		Seq:   event.GetSeq(),
		Record: domain.ChangeRecord{
			UnitID:     event.GetId(),
			Previous:   statusFromProto(event.GetPreviousStatus()),
			New:        statusFromProto(event.GetNewStatus()),
			ObservedAt: timeFromProto(event.GetObservedAt()),
		},
	}
}

func logEntryToProto(entry domain.LogEntry) *proto.LogEntry {
	return &proto.LogEntry{
		Id:        entry.UnitID,
		Timestamp: timeToProto(entry.Timestamp),
		Cursor:    entry.Cursor,
		Priority:  int32(entry.Priority),
		Message:   entry.Message,
	}
}

func logEntryFromProto(entry *proto.LogEntry) domain.LogEntry {
	return domain.LogEntry{
		UnitID:    entry.GetId(),
		Timestamp: timeFromProto(entry.GetTimestamp()),
		Cursor:    entry.GetCursor(),
		Priority:  int(entry.GetPriority()),
		Message:   entry.GetMessage(),
	}
}
