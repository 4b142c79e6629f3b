package status

import (
	"time"

	"github.com/withmandala/go-log"
)

// RecordType is the symbolic DNS record type for a normalized record.
type RecordType string

const (
	TypeA       RecordType = "A"
	TypeAAAA    RecordType = "AAAA"
	TypeMX      RecordType = "MX"
	TypeNS      RecordType = "NS"
	TypeCNAME   RecordType = "CNAME"
	TypeTXT     RecordType = "TXT"
	TypeSOA     RecordType = "SOA"
	TypeUnknown RecordType = "UNKNOWN"
)

// QueryTypes is the set of record types the aggregator collects, in the
// order their results are concatenated.
var QueryTypes = []RecordType{TypeA, TypeAAAA, TypeMX, TypeNS, TypeCNAME, TypeTXT, TypeSOA}

// Record is one normalized DNS record. Records are built fresh from every
// lookup response and never mutated afterwards.
type Record struct {
	Type     RecordType `json:"type"`
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	TTL      uint32     `json:"ttl,omitempty"`
	Priority *uint16    `json:"priority,omitempty"`
}

// Status is one snapshot of a domain's DNS state. A refresh produces a new
// Status; callers replace the previous one rather than mutating it.
type Status struct {
	Domain       string    `json:"domain"`
	Owner        string    `json:"owner"`
	Records      []Record  `json:"records"`
	LastChecked  time.Time `json:"lastChecked"`
	IsReachable  bool      `json:"isReachable"`
	ResponseTime *int64    `json:"responseTime,omitempty"`
}

// Answer is one entry of the Answer section of a DoH JSON response.
type Answer struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

// Response is the DoH JSON envelope, reduced to the fields we consume.
type Response struct {
	Status int      `json:"Status"`
	Answer []Answer `json:"Answer"`
}

// set up a global logger...
// see: https://stackoverflow.com/a/43827612/57626
var logger *log.Logger

func SetLogger(l *log.Logger) {
	logger = l
}
