package status

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/withmandala/go-log"
)

func TestMain(m *testing.M) {
	SetLogger(log.New(os.Stderr))
	os.Exit(m.Run())
}

func TestCheckCollectsAllTypes(t *testing.T) {
	mock := NewMockResolver()
	mock.AddAnswer(TypeA, Answer{Name: "dev0-1.com", Type: 1, TTL: 3600, Data: "104.198.14.52"})
	mock.AddAnswer(TypeNS, Answer{Name: "dev0-1.com", Type: 2, TTL: 86400, Data: "ns1.digitalocean.com"})
	mock.AddAnswer(TypeNS, Answer{Name: "dev0-1.com", Type: 2, TTL: 86400, Data: "ns2.digitalocean.com"})
	mock.AddAnswer(TypeTXT, Answer{Name: "dev0-1.com", Type: 16, TTL: 3600, Data: "v=spf1 -all"})

	st := NewAggregator(mock).Check(context.Background(), "dev0-1.com", "anshulyadav32")

	if st.Domain != "dev0-1.com" || st.Owner != "anshulyadav32" {
		t.Errorf("Check() domain/owner = %s/%s", st.Domain, st.Owner)
	}
	if len(st.Records) != 4 {
		t.Fatalf("Check() returned %d records; want 4", len(st.Records))
	}
	// concatenation follows type iteration order: A before NS before TXT
	if st.Records[0].Type != TypeA {
		t.Errorf("Records[0].Type = %s; want A", st.Records[0].Type)
	}
	if st.Records[1].Type != TypeNS || st.Records[2].Type != TypeNS {
		t.Errorf("Records[1..2] types = %s, %s; want NS, NS", st.Records[1].Type, st.Records[2].Type)
	}
	if st.Records[3].Type != TypeTXT {
		t.Errorf("Records[3].Type = %s; want TXT", st.Records[3].Type)
	}
	if !st.IsReachable {
		t.Error("Check() IsReachable = false; want true (probe had answers)")
	}
	if st.ResponseTime == nil {
		t.Error("Check() ResponseTime = nil; want a measurement")
	}
}

func TestCheckProbeFailureIsolated(t *testing.T) {
	// the A query (and therefore the probe) fails at the network level,
	// other record types still populate the snapshot
	mock := NewMockResolver()
	mock.SetError(TypeA, errors.New("connection refused"))
	mock.AddAnswer(TypeNS, Answer{Name: "dev0-1.com", Type: 2, TTL: 86400, Data: "ns1.digitalocean.com"})

	st := NewAggregator(mock).Check(context.Background(), "dev0-1.com", "anshulyadav32")

	if st.IsReachable {
		t.Error("Check() IsReachable = true; want false")
	}
	if st.ResponseTime != nil {
		t.Errorf("Check() ResponseTime = %d; want absent", *st.ResponseTime)
	}
	if len(st.Records) != 1 || st.Records[0].Type != TypeNS {
		t.Errorf("Check() records = %+v; want the single NS record", st.Records)
	}
}

func TestCheckTotalFailure(t *testing.T) {
	mock := NewMockResolver()
	for _, rtype := range QueryTypes {
		mock.SetError(rtype, errors.New("network is unreachable"))
	}

	st := NewAggregator(mock).Check(context.Background(), "dev0-1.com", "anshulyadav32")

	if st.Records == nil || len(st.Records) != 0 {
		t.Errorf("Check() records = %+v; want empty non-nil slice", st.Records)
	}
	if st.IsReachable {
		t.Error("Check() IsReachable = true; want false")
	}
	if st.ResponseTime != nil {
		t.Error("Check() ResponseTime set; want absent")
	}
	if st.LastChecked.IsZero() {
		t.Error("Check() LastChecked is zero; want stamped")
	}
}

func TestCheckEmptyProbeAnswerStillMeasured(t *testing.T) {
	// a definitive empty answer completes the probe: not reachable, but
	// the elapsed time is still reported
	mock := NewMockResolver()

	st := NewAggregator(mock).Check(context.Background(), "nxdomain.example", "nobody")

	if st.IsReachable {
		t.Error("Check() IsReachable = true; want false for empty answers")
	}
	if st.ResponseTime == nil {
		t.Error("Check() ResponseTime = nil; want a measurement for a completed probe")
	}
}

func TestCheckStampsAfterCompletion(t *testing.T) {
	before := time.Now()
	st := NewAggregator(NewMockResolver()).Check(context.Background(), "dev0-1.com", "anshulyadav32")
	after := time.Now()

	if st.LastChecked.Before(before) || st.LastChecked.After(after) {
		t.Errorf("Check() LastChecked = %v; want between %v and %v", st.LastChecked, before, after)
	}
}
