// Package app wires the configuration, logging, observability sinks and the
// product catalog into a runnable service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmorel/catalog/config"
	"github.com/jmorel/catalog/core/monitoring"
	"github.com/jmorel/catalog/core/observe"
	"github.com/jmorel/catalog/core/product"
	// Register the built-in product kinds.
	_ "github.com/jmorel/catalog/infra/kinds"
	"github.com/jmorel/catalog/infra/logger"
	inframonitoring "github.com/jmorel/catalog/infra/monitoring"
	infraobserve "github.com/jmorel/catalog/infra/observe"
	"github.com/jmorel/catalog/internal/eventbus"
)

// Service owns the catalog, its event bus and the configured sinks.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	sink     observe.Sink
	bus      eventbus.EventBus
	enabled  map[string]bool
	promAddr string
}

// New creates a Service from the configuration. Built-in kinds are already
// registered by importing infra/kinds; cfg.Catalog.Kinds narrows the set a
// caller may use.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.NewZerologLogger("catalog", cfg.Logging.Level, cfg.Logging.Format)

	monitor, err := inframonitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry monitor: %w", err)
	}
	monitoring.Init(monitor)

	sink, err := observe.NewSink(cfg.Observe.Sinks)
	if err != nil {
		return nil, fmt.Errorf("observe sink: %w", err)
	}

	enabled := make(map[string]bool, len(cfg.Catalog.Kinds))
	for _, k := range cfg.Catalog.Kinds {
		if !product.Has(k) {
			return nil, fmt.Errorf("unknown catalog kind %s (have %v)", k, product.Kinds())
		}
		enabled[k] = true
	}

	bus := eventbus.New()
	product.SetObserver(observe.NewRecorder(bus, logg))

	return &Service{
		cfg:      cfg,
		log:      logg,
		sink:     sink,
		bus:      bus,
		enabled:  enabled,
		promAddr: cfg.Observe.PrometheusAddr,
	}, nil
}

// Start launches the event collector and, when configured, the Prometheus
// endpoint. Both stop when the context is canceled.
func (s *Service) Start(ctx context.Context) {
	observe.StartEventCollector(ctx, s.bus, s.sink)
	if rec, ok := s.sink.(observe.KindCountRecorder); ok {
		if err := rec.RecordKindCount(len(product.Kinds())); err != nil {
			s.log.Warnf("kind count: %v", err)
		}
	}
	if s.promAddr != "" {
		go func() {
			defer monitoring.Recover()
			if err := infraobserve.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
}

// Create builds one variant, honoring the configured kind restriction.
func (s *Service) Create(kind string, attrs map[string]any) (product.Product, error) {
	if len(s.enabled) > 0 && !s.enabled[kind] {
		return nil, fmt.Errorf("kind %s is not enabled in this catalog", kind)
	}
	p, err := product.New(product.Spec{Kind: kind, Attrs: attrs})
	if err != nil {
		monitoring.CaptureException(err, map[string]string{"kind": kind})
		return nil, err
	}
	return p, nil
}

// Materialize builds every configured item in declaration order. The first
// failure aborts and is returned annotated with the item index.
func (s *Service) Materialize() ([]product.Product, error) {
	items := make([]product.Product, 0, len(s.cfg.Catalog.Items))
	for i, spec := range s.cfg.Catalog.Items {
		p, err := s.Create(spec.Kind, spec.Attrs)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		s.log.Infof("materialized %s %q at %.2f", spec.Kind, p.Name(), p.Price())
		items = append(items, p)
	}
	return items, nil
}

// Kinds returns the discriminator keys available to this service.
func (s *Service) Kinds() []string {
	all := product.Kinds()
	if len(s.enabled) == 0 {
		return all
	}
	out := make([]string, 0, len(s.enabled))
	for _, k := range all {
		if s.enabled[k] {
			out = append(out, k)
		}
	}
	return out
}

// Run starts the service, materializes the configured items and blocks until
// the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.Start(ctx)
	items, err := s.Materialize()
	if err != nil {
		return err
	}
	s.log.Infof("catalog ready: %d kinds, %d items", len(s.Kinds()), len(items))
	<-ctx.Done()
	return nil
}

// Close detaches the observer, flushes the monitor and releases the bus and
// sinks.
func (s *Service) Close() error {
	product.SetObserver(nil)
	s.bus.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	monitoring.Flush(2 * time.Second)
	return nil
}
