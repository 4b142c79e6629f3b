package status

import (
	"context"
	"sync"
	"time"
)

// Aggregator produces domain status snapshots by fanning out lookups to a
// Resolver. The zero value is not usable; construct with NewAggregator.
type Aggregator struct {
	resolver Resolver
}

func NewAggregator(resolver Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// probeResult carries the outcome of the reachability probe. elapsed is
// only meaningful when completed is true (the probe got a definitive
// answer, possibly empty); a transport failure leaves completed false.
type probeResult struct {
	reachable bool
	completed bool
	elapsed   int64
}

// Check collects records for every supported type and probes reachability,
// all concurrently, and assembles one Status. Failed lookups contribute no
// records; Check itself never fails - in the worst case the snapshot has an
// empty record list and IsReachable false.
func (a *Aggregator) Check(ctx context.Context, domain, owner string) Status {
	results := make([][]Record, len(QueryTypes))
	var probe probeResult

	var wg sync.WaitGroup
	for i, rtype := range QueryTypes {
		wg.Add(1)
		go func(i int, rtype RecordType) {
			defer wg.Done()
			resp, err := a.resolver.Query(ctx, domain, rtype)
			if err != nil {
				logger.Warnf("lookup %s %s failed: %s", rtype, domain, err)
				return
			}
			results[i] = Normalize(resp.Answer)
		}(i, rtype)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		start := time.Now()
		resp, err := a.resolver.Query(ctx, domain, TypeA)
		if err != nil {
			logger.Warnf("reachability probe for %s failed: %s", domain, err)
			return
		}
		probe.completed = true
		probe.elapsed = time.Since(start).Milliseconds()
		probe.reachable = len(resp.Answer) > 0
	}()

	wg.Wait()

	var records []Record
	for _, r := range results {
		records = append(records, r...)
	}
	if records == nil {
		records = []Record{}
	}

	st := Status{
		Domain:      domain,
		Owner:       owner,
		Records:     records,
		LastChecked: time.Now(),
		IsReachable: probe.reachable,
	}
	if probe.completed {
		elapsed := probe.elapsed
		st.ResponseTime = &elapsed
	}

	logger.Infof("checked %s: %d records, reachable=%t", domain, len(records), st.IsReachable)

	return st
}
