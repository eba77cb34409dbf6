package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

func TestEmitGauge(t *testing.T) {
	_, log := testlog.NewCapturingLogger()
	e := New(log, "")

	e.EmitGauge("provisioner.start.duration", 3, map[string]string{"name": "a", "state": "Succeeded"})
	e.EmitGauge("provisioner.start.duration", 5, map[string]string{"name": "b", "state": "Failed"})
	e.EmitGauge("provisioner.start.duration", 4, map[string]string{"name": "a", "state": "Succeeded"})

	count, err := testutil.GatherAndCount(e.Registry(), "samples_provisioner_start_duration")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, count)

	g := e.gauges["provisioner_start_duration{name,state}"]
	assert.Equal(t, 4.0, testutil.ToFloat64(g.WithLabelValues("a", "Succeeded")))
	assert.Equal(t, 5.0, testutil.ToFloat64(g.WithLabelValues("b", "Failed")))
}

func TestEmitDifferentLabelSets(t *testing.T) {
	h, log := testlog.NewCapturingLogger()
	e := New(log, "")

	e.EmitGauge("phase.duration", 1, map[string]string{"phase": "create"})
	e.EmitFloat("phase.duration", 2.5, map[string]string{"phase": "create", "extra": "x"})

	// the second vector has the same fully-qualified name with other labels,
	// which the registry refuses
	assert.Len(t, h.Entries, 1)

	count, err := testutil.GatherAndCount(e.Registry(), "samples_phase_duration")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, count)
}

func TestClose(t *testing.T) {
	for _, tt := range []struct {
		name     string
		path     func(dir string) string
		wantFile bool
	}{
		{
			name:     "writes textfile",
			path:     func(dir string) string { return filepath.Join(dir, "samples.prom") },
			wantFile: true,
		},
		{
			name: "no path keeps metrics in memory",
			path: func(string) string { return "" },
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, log := testlog.NewCapturingLogger()
			e := New(log, tt.path(dir))

			e.EmitGauge("provisioner.start.duration", 7, map[string]string{"name": "a", "state": "Succeeded"})

			if err := e.Close(); err != nil {
				t.Fatal(err)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}

			if !tt.wantFile {
				assert.Empty(t, entries)
				return
			}

			b, err := os.ReadFile(tt.path(dir))
			if err != nil {
				t.Fatal(err)
			}
			assert.True(t, strings.Contains(string(b), `samples_provisioner_start_duration{name="a",state="Succeeded"} 7`), string(b))
		})
	}
}
