package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
)

const metricStartDuration = "provisioner.start.duration"

// StartAllWithTelemetry starts every named resource concurrently, timing each
// start operation. Once all of them have settled, the provisioning state of
// every resource is read back, whether or not its start succeeded.
//
// One record is returned per name, in input order. Per-resource failures are
// recorded, never returned: the only error is the context's. When the context
// is cancelled during the start phase the read-back is skipped, so FinalState
// is left empty on every record.
func (p *Provisioner) StartAllWithTelemetry(ctx context.Context, names []string) ([]*ProvisionRecord, error) {
	records := make([]*ProvisionRecord, len(names))
	for i, name := range names {
		records[i] = &ProvisionRecord{Name: name, Status: StatusInProgress}
	}

	p.log.Infof("starting %d resources", len(names))

	errs := p.fanOut(ctx, len(records), func(ctx context.Context, i int) error {
		r := records[i]

		r.StartedAt = p.clock.Now()
		r.Status, r.Err = p.runOperation(ctx, opStart, r.Name, func(ctx context.Context) (Operation, error) {
			return p.client.Start(ctx, r.Name)
		})
		r.CompletedAt = p.clock.Now()

		if r.Err != nil {
			p.log.WithField("name", r.Name).Warn(r.Err)
		}
		return nil
	})

	// a panicking start leaves its record half written
	for i, err := range errs {
		if err == nil {
			continue
		}
		r := records[i]
		r.Status = StatusFailed
		r.Err = &OperationError{Op: opStart, Name: r.Name, Status: StatusFailed, Err: err}
		if r.CompletedAt.IsZero() {
			r.CompletedAt = p.clock.Now()
		}
	}

	if err := ctx.Err(); err != nil {
		return records, err
	}

	errs = p.fanOut(ctx, len(records), func(ctx context.Context, i int) error {
		r := records[i]

		r.FinalState, r.VerifyErr = p.client.ProvisioningState(ctx, r.Name)
		if r.VerifyErr != nil {
			p.log.WithField("name", r.Name).Warnf("reading provisioning state: %v", r.VerifyErr)
		}
		return nil
	})

	for i, err := range errs {
		if err != nil {
			records[i].VerifyErr = err
		}
	}

	return records, ctx.Err()
}

// Report logs one line per record and emits the start duration of each
// resource.
func (p *Provisioner) Report(records []*ProvisionRecord) {
	var failed int

	for _, r := range records {
		log := p.log.WithFields(logrus.Fields{
			"name":              r.Name,
			"provisioningState": r.FinalState,
			"elapsedSeconds":    r.ElapsedSeconds(),
		})

		if r.Failed() {
			failed++
			log.Warn("container group did not start")
		} else {
			log.Info("container group started")
		}

		p.metrics.EmitGauge(metricStartDuration, r.ElapsedSeconds(), map[string]string{
			"name":  r.Name,
			"state": r.FinalState,
		})
	}

	p.log.Infof("%d of %d container groups started", len(records)-failed, len(records))
}
