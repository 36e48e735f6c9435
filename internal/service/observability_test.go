package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     UseCaseOverview,
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"top_n": 3, "at_risk": 2},
	})

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "component=horizon")
	assert.Contains(t, line, "use_case=overview")
	assert.Contains(t, line, "duration_ms=12")
	assert.Less(t, strings.Index(line, "at_risk=2"), strings.Index(line, "top_n=3"))
}

func TestLogUseCaseObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: UseCaseImportSnapshot,
		Err:  errors.New("disk full"),
	})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="disk full"`)
	assert.Contains(t, buf.String(), "success=false")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
