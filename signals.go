package tidy

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for normalization events.
var (
	SignalProcessorCreated  = capitan.NewSignal("tidy.processor.created", "Processor instantiated")
	SignalNormalizeStart    = capitan.NewSignal("tidy.normalize.start", "Normalize operation beginning")
	SignalNormalizeComplete = capitan.NewSignal("tidy.normalize.complete", "Normalize operation finished")
	SignalReceiveStart      = capitan.NewSignal("tidy.receive.start", "Receive operation beginning")
	SignalReceiveComplete   = capitan.NewSignal("tidy.receive.complete", "Receive operation finished")
	SignalSendStart         = capitan.NewSignal("tidy.send.start", "Send operation beginning")
	SignalSendComplete      = capitan.NewSignal("tidy.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType     = capitan.NewStringKey("content_type")
	KeyTypeName        = capitan.NewStringKey("type_name")
	KeySize            = capitan.NewIntKey("size")
	KeyDuration        = capitan.NewDurationKey("duration")
	KeyError           = capitan.NewErrorKey("error")
	KeyFieldCount      = capitan.NewIntKey("field_count")
	KeyIgnoredCount    = capitan.NewIntKey("ignored_count")
	KeyNormalizedCount = capitan.NewIntKey("normalized_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, typeName string, fields, ignored int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
		KeyIgnoredCount.Field(ignored),
	)
}

// emitNormalizeStart emits an event when normalization begins.
func emitNormalizeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalNormalizeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitNormalizeComplete emits an event when normalization finishes.
func emitNormalizeComplete(ctx context.Context, typeName string, duration time.Duration, normalized int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyNormalizedCount.Field(normalized),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalNormalizeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalNormalizeComplete, fields...)
	}
}

// emitReceiveStart emits an event when receive begins.
func emitReceiveStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

// emitSendStart emits an event when send begins.
func emitSendStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}
