package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/koberec/eshop/internal/constants"
)

var Tracer = otel.Tracer(constants.APP_MAIN_ESHOP)
