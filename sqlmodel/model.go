package sqlmodel

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	Provider     string    `gorm:"type:varchar(20);default:'local'" json:"provider"`
	ProviderID   string    `gorm:"type:varchar(255)" json:"providerId"`
	AvatarUrl    string    `gorm:"type:text" json:"avatarUrl"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DNSRecord struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Ttl       uint32    `gorm:"default:3600" json:"ttl"`
	Priority  int       `json:"priority"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (DNSRecord) TableName() string {
	return "dns_records"
}

type Repository struct {
	ID          uint       `gorm:"primary_key" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	FullName    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"fullName"`
	Description string     `gorm:"type:text" json:"description"`
	HtmlUrl     string     `gorm:"type:text" json:"htmlUrl"`
	CloneUrl    string     `gorm:"type:text" json:"cloneUrl"`
	Language    string     `gorm:"type:varchar(64)" json:"language"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	Watchers    int        `json:"watchers"`
	OpenIssues  int        `json:"openIssues"`
	Size        int        `json:"size"`
	IsPrivate   bool       `json:"isPrivate"`
	IsFork      bool       `json:"isFork"`
	IsArchived  bool       `json:"isArchived"`
	Topics      []string   `gorm:"serializer:json" json:"topics"`
	PushedAt    *time.Time `json:"pushedAt"`
	LastCommit  string     `gorm:"type:varchar(64)" json:"lastCommit"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type PersonalInfo struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Title          string    `gorm:"type:varchar(255)" json:"title"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Phone          string    `gorm:"type:varchar(40)" json:"phone"`
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	Website        string    `gorm:"type:text" json:"website"`
	AvatarUrl      string    `gorm:"type:text" json:"avatarUrl"`
	GithubUrl      string    `gorm:"type:text" json:"githubUrl"`
	LinkedinUrl    string    `gorm:"type:text" json:"linkedinUrl"`
	TwitterUrl     string    `gorm:"type:text" json:"twitterUrl"`
	Skills         []string  `gorm:"serializer:json" json:"skills"`
	Interests      []string  `gorm:"serializer:json" json:"interests"`
	Experience     int       `json:"experience"`
	Education      string    `gorm:"type:text" json:"education"`
	Certifications []string  `gorm:"serializer:json" json:"certifications"`
	Languages      []string  `gorm:"serializer:json" json:"languages"`
	Timezone       string    `gorm:"type:varchar(64)" json:"timezone"`
	Availability   string    `gorm:"type:varchar(64)" json:"availability"`
	ResumeUrl      string    `gorm:"type:text" json:"resumeUrl"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (PersonalInfo) TableName() string {
	return "personal_info"
}

// MonitoringHistory and Alert are migrated and counted by the stats
// endpoint; nothing writes to them yet.
type MonitoringHistory struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	DNSRecordID  uint      `json:"dnsRecordId"`
	IsReachable  bool      `json:"isReachable"`
	ResponseTime int64     `json:"responseTime"`
	CheckedAt    time.Time `json:"checkedAt"`
}

func (MonitoringHistory) TableName() string {
	return "monitoring_history"
}

type Alert struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	Type       string    `gorm:"type:varchar(40)" json:"type"`
	Message    string    `gorm:"type:text" json:"message"`
	IsResolved bool      `json:"isResolved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Setting struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	Key         string `gorm:"type:varchar(128);uniqueIndex;not null" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"type:text" json:"description"`
}
