package observe

import (
	coreobserve "github.com/jmorel/catalog/core/observe"
	"github.com/jmorel/catalog/core/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// init registers built-in sinks.
func init() {
	_ = coreobserve.RegisterSink("nop", func(map[string]any) (coreobserve.Sink, error) {
		return coreobserve.NopSink{}, nil
	})

	_ = coreobserve.RegisterSink("prometheus", func(map[string]any) (coreobserve.Sink, error) {
		// The metrics HTTP address lives in the top-level config; the sink
		// itself only needs the registerer.
		return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
	})

	_ = coreobserve.RegisterSink("influx", func(attrs map[string]any) (coreobserve.Sink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := registry.Decode(attrs, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
