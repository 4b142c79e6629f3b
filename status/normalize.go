package status

import "github.com/miekg/dns"

// typeNames maps upstream numeric type codes to their symbolic names.
// Anything outside this table normalizes to TypeUnknown.
var typeNames = map[uint16]RecordType{
	dns.TypeA:     TypeA,
	dns.TypeAAAA:  TypeAAAA,
	dns.TypeMX:    TypeMX,
	dns.TypeNS:    TypeNS,
	dns.TypeCNAME: TypeCNAME,
	dns.TypeTXT:   TypeTXT,
	dns.TypeSOA:   TypeSOA,
}

// Normalize converts the raw answer section of a DoH response into typed
// records, preserving answer order. A nil or empty answer section (the
// NXDOMAIN case included) yields an empty slice. Record values are passed
// through verbatim.
func Normalize(answers []Answer) []Record {
	records := make([]Record, 0, len(answers))
	for _, a := range answers {
		rtype, ok := typeNames[a.Type]
		if !ok {
			rtype = TypeUnknown
		}
		records = append(records, Record{
			Type:  rtype,
			Name:  a.Name,
			Value: a.Data,
			TTL:   a.TTL,
		})
	}
	return records
}
