package trace

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestStartSpan_Disabled(t *testing.T) {
	if err := Init(false, nil); err != nil {
		t.Fatal(err)
	}
	ctx, span := StartSpan(context.Background(), "noop")
	End(span, errors.New("ignored"))
	if _, ok := TraceID(ctx); ok {
		t.Error("disabled tracing should not yield a trace id")
	}
}

func TestStartSpan_Enabled(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(true, &buf); err != nil {
		t.Fatal(err)
	}
	defer func() { enabled = false }()

	ctx, span := StartSpan(context.Background(), "analyze")
	id, ok := TraceID(ctx)
	if !ok || id == "" {
		t.Errorf("expected trace id, got %q %v", id, ok)
	}
	End(span, nil)
	if err := Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"Name":"analyze"`)) {
		t.Errorf("span not exported: %s", buf.String())
	}
}
