package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var editorTracer = otel.Tracer("dugout/internal/usecase")
var editorNoopSpan = trace.SpanFromContext(context.Background())

func startEditorSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, editorNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, editorNoopSpan
	}
	return editorTracer.Start(ctx, name)
}
