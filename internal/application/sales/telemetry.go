package sales

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/gior-api/internal/domain"
)

type engineMetrics struct {
	created  metric.Int64Counter
	reversed metric.Int64Counter
	rejected metric.Int64Counter
}

func newEngineMetrics() engineMetrics {
	meter := otel.Meter(tracerName)
	return engineMetrics{
		created:  counter(meter, "sales_created_total", "Ventas confirmadas"),
		reversed: counter(meter, "sales_reversed_total", "Ventas anuladas con reversión de stock"),
		rejected: counter(meter, "sales_rejected_total", "Operaciones de venta abortadas"),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter(tracerName).Int64Counter(name)
	}
	return c
}

// reject registra el error en el span y en el contador de rechazos.
func (e *Engine) reject(ctx context.Context, span trace.Span, op string, err error) {
	reason := rejectReason(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, reason)
	e.metrics.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("reason", reason),
	))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCustomer):
		return "missing_customer"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInvalidLineItem):
		return "invalid_line_item"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrSaleNotFound):
		return "sale_not_found"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	default:
		return "storage_failure"
	}
}
