package sqlmodel

import (
	"fmt"

	"gorm.io/gorm"
)

func seedRecords() []DNSRecord {
	return []DNSRecord{
		{Type: "A", Name: "dev0-1.com", Value: "104.198.14.52", Ttl: 3600, IsActive: true},
		{Type: "AAAA", Name: "dev0-1.com", Value: "2001:0db8:85a3:0000:0000:8a2e:0370:7334", Ttl: 3600, IsActive: true},
		{Type: "CNAME", Name: "www.dev0-1.com", Value: "dev0-1.com", Ttl: 3600, IsActive: true},
		{Type: "MX", Name: "dev0-1.com", Value: "10 mail.dev0-1.com", Ttl: 3600, Priority: 10, IsActive: true},
		{Type: "TXT", Name: "dev0-1.com", Value: "v=spf1 include:_spf.google.com ~all", Ttl: 3600, IsActive: true},
		{Type: "NS", Name: "dev0-1.com", Value: "ns1.digitalocean.com", Ttl: 3600, IsActive: true},
		{Type: "NS", Name: "dev0-1.com", Value: "ns2.digitalocean.com", Ttl: 3600, IsActive: true},
		{Type: "NS", Name: "dev0-1.com", Value: "ns3.digitalocean.com", Ttl: 3600, IsActive: true},
	}
}

func seedSettings() []Setting {
	return []Setting{
		{Key: "site_name", Value: "DNS Monitor", Description: "Site name for the application"},
		{Key: "default_ttl", Value: "3600", Description: "Default TTL for DNS records"},
		{Key: "monitoring_interval", Value: "300", Description: "DNS monitoring interval in seconds"},
	}
}

func seedRepositories() []Repository {
	return []Repository{
		{
			Name:        "website-dev0-1",
			FullName:    "anshulyadav32/website-dev0-1",
			Description: "Full-stack DNS management application with authentication, DNS record management, and real-time monitoring.",
			HtmlUrl:     "https://github.com/anshulyadav32/website-dev0-1",
			CloneUrl:    "https://github.com/anshulyadav32/website-dev0-1.git",
			Language:    "TypeScript",
			Stars:       12,
			Forks:       3,
			Topics:      []string{"dns", "dashboard", "portfolio"},
		},
		{
			Name:        "dns-status-api",
			FullName:    "anshulyadav32/dns-status-api",
			Description: "REST API backing the domain status dashboard.",
			HtmlUrl:     "https://github.com/anshulyadav32/dns-status-api",
			CloneUrl:    "https://github.com/anshulyadav32/dns-status-api.git",
			Language:    "Go",
			Stars:       5,
			Forks:       1,
			Topics:      []string{"dns", "api"},
		},
	}
}

func seedPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:      "Anshul Yadav",
		Title:     "Full-Stack Developer",
		Bio:       "Developer focused on web infrastructure and DNS tooling.",
		Email:     "contact@dev0-1.com",
		Location:  "India",
		Website:   "https://dev0-1.com",
		GithubUrl: "https://github.com/anshulyadav32",
		Skills:    []string{"Go", "TypeScript", "PostgreSQL", "DNS"},
		IsActive:  true,
	}
}

// Seed loads the static sample data. Rows are matched by their natural key
// (record triple, setting key, repository full name) so running it twice
// does not duplicate anything.
func Seed(db *gorm.DB) error {
	var existing []DNSRecord
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	recordKeys := make(map[string]bool)
	for _, r := range existing {
		recordKeys[r.Type+"|"+r.Name+"|"+r.Value] = true
	}

	var newRecords []DNSRecord
	for _, r := range seedRecords() {
		if !recordKeys[r.Type+"|"+r.Name+"|"+r.Value] {
			newRecords = append(newRecords, r)
		}
	}
	if len(newRecords) > 0 {
		if err := db.Create(&newRecords).Error; err != nil {
			return fmt.Errorf("seeding dns records: %w", err)
		}
	}

	for _, s := range seedSettings() {
		var count int64
		if err := db.Model(&Setting{}).Where("key = ?", s.Key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&s).Error; err != nil {
				return fmt.Errorf("seeding setting %s: %w", s.Key, err)
			}
		}
	}

	for _, r := range seedRepositories() {
		var count int64
		if err := db.Model(&Repository{}).Where("full_name = ?", r.FullName).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&r).Error; err != nil {
				return fmt.Errorf("seeding repository %s: %w", r.FullName, err)
			}
		}
	}

	var infoCount int64
	if err := db.Model(&PersonalInfo{}).Where("is_active = ?", true).Count(&infoCount).Error; err != nil {
		return err
	}
	if infoCount == 0 {
		info := seedPersonalInfo()
		if err := db.Create(&info).Error; err != nil {
			return fmt.Errorf("seeding personal info: %w", err)
		}
	}

	return nil
}
