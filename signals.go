package isin

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalEncodeComplete     = capitan.NewSignal("isin.encode.complete", "Identifier encoded to numeric value")
	SignalDecodeComplete     = capitan.NewSignal("isin.decode.complete", "Numeric value decoded to identifier")
	SignalCheckDigitComplete = capitan.NewSignal("isin.checksum.complete", "Check digit computed")
	SignalVerifyComplete     = capitan.NewSignal("isin.verify.complete", "Check digit verified")
)

// Keys for typed event data.
var (
	KeyPolicy     = capitan.NewStringKey("policy")
	KeyIdentifier = capitan.NewStringKey("identifier")
	KeyValue      = capitan.NewIntKey("value")
	KeyCheckDigit = capitan.NewIntKey("check_digit")
	KeyValid      = capitan.NewIntKey("valid")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, policy CasePolicy, id string, value uint64, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyPolicy.Field(string(policy)),
		KeyIdentifier.Field(id),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
		return
	}
	fields = append(fields, KeyValue.Field(int(value)))
	capitan.Emit(ctx, SignalEncodeComplete, fields...)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, policy CasePolicy, value uint64, id string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyPolicy.Field(string(policy)),
		KeyValue.Field(int(value)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
		return
	}
	fields = append(fields, KeyIdentifier.Field(id))
	capitan.Emit(ctx, SignalDecodeComplete, fields...)
}

// emitCheckDigitComplete emits an event when a check-digit computation finishes.
func emitCheckDigitComplete(ctx context.Context, policy CasePolicy, prefix string, digit int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyPolicy.Field(string(policy)),
		KeyIdentifier.Field(prefix),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCheckDigitComplete, fields...)
		return
	}
	fields = append(fields, KeyCheckDigit.Field(digit))
	capitan.Emit(ctx, SignalCheckDigitComplete, fields...)
}

// emitVerifyComplete emits an event when a verification finishes.
// Verify never errors, so there is no error variant.
func emitVerifyComplete(ctx context.Context, policy CasePolicy, id string, valid bool, duration time.Duration) {
	result := 0
	if valid {
		result = 1
	}
	capitan.Emit(ctx, SignalVerifyComplete,
		KeyPolicy.Field(string(policy)),
		KeyIdentifier.Field(id),
		KeyValid.Field(result),
		KeyDuration.Field(duration),
	)
}
