package metrics

import "go.uber.org/fx"

// Module provides the process-wide Metrics instance.
var Module = fx.Provide(New)
