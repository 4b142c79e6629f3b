package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

func TestCreateRecordAppliesDefaultTTL(t *testing.T) {
	s, _ := newTestServer(t)

	resp := doJSON(t, s, "POST", "/api/dns/records",
		`{"type":"A","name":"example.com","value":"1.2.3.4"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/dns/records status = %d; want 201", resp.StatusCode)
	}

	var record sqlmodel.DNSRecord
	decodeBody(t, resp, &record)
	if record.ID == 0 {
		t.Error("created record has no id")
	}
	if record.Ttl != 3600 {
		t.Errorf("created record ttl = %d; want default 3600", record.Ttl)
	}
	if record.Type != "A" || record.Name != "example.com" || record.Value != "1.2.3.4" {
		t.Errorf("created record = %+v", record)
	}
}

func TestCreateRecordValidation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing type", `{"name":"example.com","value":"1.2.3.4"}`},
		{"missing name", `{"type":"A","value":"1.2.3.4"}`},
		{"missing value", `{"type":"A","name":"example.com"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, s, "POST", "/api/dns/records", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d; want 400", resp.StatusCode)
			}
			var body map[string]string
			decodeBody(t, resp, &body)
			if body["message"] != "Type, name, and value are required" {
				t.Errorf("message = %q", body["message"])
			}
		})
	}
}

func TestGetRecordNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	resp := doJSON(t, s, "GET", "/api/dns/records/9999", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /api/dns/records/9999 status = %d; want 404", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["message"] != "DNS record not found" {
		t.Errorf("message = %q; want \"DNS record not found\"", body["message"])
	}
}

func TestRecordLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	resp := doJSON(t, s, "POST", "/api/dns/records",
		`{"type":"CNAME","name":"www.example.com","value":"example.com","ttl":300}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d; want 201", resp.StatusCode)
	}
	var created sqlmodel.DNSRecord
	decodeBody(t, resp, &created)
	if created.Ttl != 300 {
		t.Errorf("created ttl = %d; want 300", created.Ttl)
	}

	recordURL := fmt.Sprintf("/api/dns/records/%d", created.ID)

	resp = doJSON(t, s, "GET", recordURL, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d; want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, s, "PUT", recordURL,
		`{"type":"CNAME","name":"www.example.com","value":"other.example.com"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d; want 200", resp.StatusCode)
	}
	var updated sqlmodel.DNSRecord
	decodeBody(t, resp, &updated)
	if updated.Value != "other.example.com" {
		t.Errorf("updated value = %s; want other.example.com", updated.Value)
	}
	if updated.Ttl != 3600 {
		t.Errorf("updated ttl = %d; want default 3600 when omitted", updated.Ttl)
	}

	resp = doJSON(t, s, "DELETE", recordURL, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d; want 200", resp.StatusCode)
	}
	var deleted map[string]interface{}
	decodeBody(t, resp, &deleted)
	if deleted["message"] != "DNS record deleted successfully" {
		t.Errorf("delete message = %q", deleted["message"])
	}
	// the echoed id is a JSON number, not a string
	if id, ok := deleted["id"].(float64); !ok || id != float64(created.ID) {
		t.Errorf("delete id = %v (%T); want numeric %d", deleted["id"], deleted["id"], created.ID)
	}

	resp = doJSON(t, s, "DELETE", recordURL, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d; want 404", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, s, "DELETE", "/api/dns/records/not-a-number", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-numeric id delete status = %d; want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListRecords(t *testing.T) {
	s, db := newTestServer(t)
	if err := sqlmodel.Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	resp := doJSON(t, s, "GET", "/api/dns/records", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d; want 200", resp.StatusCode)
	}

	var records []sqlmodel.DNSRecord
	decodeBody(t, resp, &records)
	if len(records) != 8 {
		t.Errorf("list returned %d records; want 8", len(records))
	}
}
