package memory

import (
	"context"
	"sync"
	"time"

	"tensio/contexts/vitals/dashboard-service/ports"
)

// Provider is an in-memory DatasetProvider for tests and local runs.
type Provider struct {
	mu      sync.RWMutex
	dataset ports.Dataset
	err     error
}

func NewProvider(dataset ports.Dataset) *Provider {
	return &Provider{dataset: dataset}
}

func (p *Provider) Dataset(_ context.Context) (ports.Dataset, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err != nil {
		return ports.Dataset{}, p.err
	}
	return p.dataset, nil
}

func (p *Provider) Set(dataset ports.Dataset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dataset = dataset
	p.err = nil
}

func (p *Provider) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// ReportSink keeps exported reports in memory.
type ReportSink struct {
	mu      sync.Mutex
	Reports map[string][]byte
}

func NewReportSink() *ReportSink {
	return &ReportSink{Reports: make(map[string][]byte)}
}

func (s *ReportSink) Write(_ context.Context, name string, content []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reports[name] = append([]byte(nil), content...)
	return name, nil
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
