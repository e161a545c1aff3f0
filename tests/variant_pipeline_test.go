package tests

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/option"
	"github.com/ib-77/variant/pkg/variant/record"
	"github.com/ib-77/variant/pkg/variant/result"
)

// job events as they appear in a worker log: queued (id, name),
// done (id, millis), dropped (id, reason)
type queued = record.R2[uuid.UUID, string]
type done = record.R2[uuid.UUID, int64]
type dropped = record.R2[uuid.UUID, string]

type jobEvent = variant.Of3[queued, done, dropped]

// TestEventLogPipeline drives a full log rendering pass over every
// alternative, including a reassigned value.
func TestEventLogPipeline(t *testing.T) {
	id1 := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id2 := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	events := []jobEvent{
		variant.Of3A[queued, done, dropped](record.New2(id1, "backfill")),
		variant.Of3B[queued, done, dropped](record.New2(id1, int64(1250))),
		variant.Of3C[queued, done, dropped](record.New2(id2, "queue overflow")),
	}

	// a reassigned event behaves exactly like a freshly built one
	var extra jobEvent
	extra.SetB(record.New2(id2, int64(90)))
	events = append(events, extra)

	lines := renderLog(events)

	assert.Equal(t, len(events), len(lines))
	assert.Equal(t, "queued backfill", lines[0])
	assert.Equal(t, "done in 1250ms", lines[1])
	assert.Equal(t, "dropped: queue overflow", lines[2])
	assert.Equal(t, "done in 90ms", lines[3])

	doneCount := 0
	for _, ev := range events {
		if ev.Index() == 1 {
			doneCount++
		}
	}
	assert.Equal(t, 2, doneCount)
}

// TestEventDeduplication relies on union value semantics: events are
// comparable, so a map collapses repeats.
func TestEventDeduplication(t *testing.T) {
	id := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	mk := func() jobEvent {
		return variant.Of3C[queued, done, dropped](record.New2(id, "oom"))
	}

	seen := map[jobEvent]int{}
	for i := 0; i < 3; i++ {
		seen[mk()]++
	}
	seen[variant.Of3A[queued, done, dropped](record.New2(id, "oom"))]++

	// three identical drops collapse; the queued event with the same
	// fields stays separate because the discriminant differs
	assert.Equal(t, 2, len(seen))
	assert.Equal(t, 3, seen[mk()])
}

// TestAccessErrorTaxonomy checks that every misuse failure is
// distinguishable by its sentinel.
func TestAccessErrorTaxonomy(t *testing.T) {
	ev := variant.Of3A[queued, done, dropped](record.New2(uuid.Nil, "x"))

	_, err := variant.Get[done](ev)
	assert.ErrorIs(t, err, variant.ErrWrongAlternative)

	finished := variant.Of3B[queued, done, dropped](record.New2(uuid.Nil, int64(5)))
	assert.ErrorIs(t, recoverFrom(func() {
		variant.MustGet[queued](finished)
	}), variant.ErrWrongAlternative)

	assert.ErrorIs(t, recoverFrom(func() {
		result.Err[int, string]("down").Unwrap()
	}), result.ErrUnwrapOnErr)

	assert.ErrorIs(t, recoverFrom(func() {
		result.Ok[int, string](1).UnwrapErr()
	}), result.ErrUnwrapOnOk)

	assert.ErrorIs(t, recoverFrom(func() {
		option.None[int]().Unwrap()
	}), option.ErrUnwrapOnNone)
}

// TestRetryBudgetParsing runs the (value, error) bridge and fluent chain
// over mixed input, mirroring how callers wrap strconv-style APIs.
func TestRetryBudgetParsing(t *testing.T) {
	inputs := []string{"2", "x", "-1", "8"}

	outputs := make([]string, 0, len(inputs))
	for _, raw := range inputs {
		outputs = append(outputs, parseBudget(raw))
	}

	assert.Equal(t, []string{"4", "invalid", "invalid", "16"}, outputs)
}

// TestReasonLookup converts between Result and Option and applies
// defaults, the common read-path shape.
func TestReasonLookup(t *testing.T) {
	id := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	events := []jobEvent{
		variant.Of3A[queued, done, dropped](record.New2(id, "sync")),
		variant.Of3C[queued, done, dropped](record.New2(id, "cancelled by operator")),
	}

	reasons := make([]string, 0, len(events))
	for _, ev := range events {
		reason := option.Map(dropReason(ev), strings.ToUpper)
		reasons = append(reasons, reason.UnwrapOr("-"))
	}
	assert.Equal(t, []string{"-", "CANCELLED BY OPERATOR"}, reasons)

	// option -> result keeps pipelines in error terms when absence is a failure
	missing := option.OkOr(dropReason(events[0]), errors.New("no drop reason"))
	_, hasErr := missing.GetErr()
	assert.True(t, hasErr)

	// when the failure carries no information, Unit is the error payload
	silent := option.OkOr(option.None[int](), record.Unit{})
	assert.Equal(t, result.Err[int, record.Unit](record.Unit{}), silent)
}

func renderLog(events []jobEvent) []string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, variant.Match3(ev,
			func(q queued) string { return "queued " + q.F1 },
			func(d done) string { return fmt.Sprintf("done in %dms", d.F1) },
			func(d dropped) string { return "dropped: " + d.F1 },
		))
	}
	return lines
}

func dropReason(ev jobEvent) option.Option[string] {
	if d, ok := ev.C(); ok {
		return option.Some(d.F1)
	}
	return option.None[string]()
}

func parseBudget(raw string) string {
	parsed := result.Start(result.From(strconv.Atoi(raw))).
		Then(func(n int) result.Result[int, error] {
			if n < 1 {
				return result.Err[int, error](fmt.Errorf("budget %d out of range", n))
			}
			return result.Ok[int, error](n)
		}).
		Map(func(n int) int { return n * 2 }).
		Result()

	return result.Match(parsed,
		func(n int) string { return strconv.Itoa(n) },
		func(error) string { return "invalid" },
	)
}

func recoverFrom(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			}
		}
	}()
	f()
	return nil
}
