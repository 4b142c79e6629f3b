package status

import (
	"context"
	"time"
)

// MockResolver implements Resolver with canned responses for testing and
// offline use
type MockResolver struct {
	responses map[RecordType]*Response
	errs      map[RecordType]error
}

// NewMockResolver creates an empty mock resolver. Types with no canned
// response resolve to an empty answer section.
func NewMockResolver() *MockResolver {
	return &MockResolver{
		responses: make(map[RecordType]*Response),
		errs:      make(map[RecordType]error),
	}
}

// AddAnswer adds a canned answer for a record type
func (m *MockResolver) AddAnswer(rtype RecordType, a Answer) *MockResolver {
	resp, ok := m.responses[rtype]
	if !ok {
		resp = &Response{}
		m.responses[rtype] = resp
	}
	resp.Answer = append(resp.Answer, a)
	return m
}

// SetError makes queries for a record type fail with err
func (m *MockResolver) SetError(rtype RecordType, err error) *MockResolver {
	m.errs[rtype] = err
	return m
}

func (m *MockResolver) Query(_ context.Context, _ string, rtype RecordType) (*Response, error) {
	if err, ok := m.errs[rtype]; ok {
		return nil, err
	}
	if resp, ok := m.responses[rtype]; ok {
		return resp, nil
	}
	return &Response{}, nil
}

func uint16ptr(v uint16) *uint16 { return &v }
func int64ptr(v int64) *int64    { return &v }

// MockStatus returns a fixed, pre-populated snapshot used wherever a live
// network round-trip is undesired. Callers may overwrite Domain, Owner and
// LastChecked on the returned value before display.
func MockStatus() Status {
	return Status{
		Domain: "dev0-1.com",
		Owner:  "anshulyadav32",
		Records: []Record{
			{Type: TypeA, Name: "dev0-1.com", Value: "192.168.1.100", TTL: 300},
			{Type: TypeA, Name: "www.dev0-1.com", Value: "192.168.1.100", TTL: 300},
			{Type: TypeAAAA, Name: "dev0-1.com", Value: "2001:db8::1", TTL: 300},
			{Type: TypeMX, Name: "dev0-1.com", Value: "mail.dev0-1.com", TTL: 3600, Priority: uint16ptr(10)},
			{Type: TypeNS, Name: "dev0-1.com", Value: "ns1.example.com", TTL: 86400},
			{Type: TypeNS, Name: "dev0-1.com", Value: "ns2.example.com", TTL: 86400},
			{Type: TypeTXT, Name: "dev0-1.com", Value: "v=spf1 include:_spf.google.com ~all", TTL: 3600},
			{Type: TypeCNAME, Name: "www.dev0-1.com", Value: "dev0-1.com", TTL: 300},
		},
		LastChecked:  time.Now(),
		IsReachable:  true,
		ResponseTime: int64ptr(150),
	}
}
