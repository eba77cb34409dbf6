package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-mgmt-samples/pkg/metrics"
)

const namespace = "samples"

var nameReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_")

// Emitter records metrics in a private registry and writes them out in the
// Prometheus text format when closed.
type Emitter struct {
	log      *logrus.Entry
	path     string
	registry *prometheus.Registry

	mu     sync.Mutex
	gauges map[string]*prometheus.GaugeVec
}

var _ metrics.Interface = (*Emitter)(nil)

// New returns an Emitter which writes to the textfile at path on Close. An
// empty path keeps metrics in memory only.
func New(log *logrus.Entry, path string) *Emitter {
	return &Emitter{
		log:      log,
		path:     path,
		registry: prometheus.NewRegistry(),
		gauges:   map[string]*prometheus.GaugeVec{},
	}
}

// Registry returns the registry holding the emitted metrics.
func (e *Emitter) Registry() *prometheus.Registry {
	return e.registry
}

func (e *Emitter) EmitFloat(stat string, value float64, dims map[string]string) {
	e.set(stat, value, dims)
}

func (e *Emitter) EmitGauge(stat string, value int64, dims map[string]string) {
	e.set(stat, float64(value), dims)
}

func (e *Emitter) set(stat string, value float64, dims map[string]string) {
	labels := make([]string, 0, len(dims))
	for k := range dims {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	gauge, err := e.gauge(stat, labels)
	if err != nil {
		e.log.Warnf("metric %s: %v", stat, err)
		return
	}

	gauge.With(prometheus.Labels(dims)).Set(value)
}

// gauge returns the vector for stat with the given label set, registering it
// on first use. The same stat with a different label set is a distinct
// vector.
func (e *Emitter) gauge(stat string, labels []string) (*prometheus.GaugeVec, error) {
	name := nameReplacer.Replace(stat)
	key := name + "{" + strings.Join(labels, ",") + "}"

	e.mu.Lock()
	defer e.mu.Unlock()

	if g, ok := e.gauges[key]; ok {
		return g, nil
	}

	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      stat,
	}, labels)

	if err := e.registry.Register(g); err != nil {
		return nil, err
	}

	e.gauges[key] = g
	return g, nil
}

// Close writes the collected metrics out.
func (e *Emitter) Close() error {
	if e.path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(e.path, e.registry)
}
