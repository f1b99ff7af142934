package models

import (
	"time"
)

// SingletonID fixed primary key of the settings and KPI records
const SingletonID uint = 1

// ===========================================================================
// OrganizationSettings (singleton)
// Created with DefaultOrganizationSettings on first read
// ===========================================================================

// OrganizationSettings branding, feature switches and plan of the school
type OrganizationSettings struct {
	// ID always SingletonID
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	Name         string  `gorm:"size:255;not null" json:"name"`
	Subdomain    string  `gorm:"size:100;not null" json:"subdomain"`
	LogoURL      *string `gorm:"size:1000" json:"logoUrl,omitempty"`
	PrimaryColor string  `gorm:"size:20;not null" json:"primaryColor"`
	Language     string  `gorm:"size:20;not null" json:"language"`
	Country      string  `gorm:"size:10;not null" json:"country"`
	Type         string  `gorm:"size:50;not null" json:"type"`

	// Feature switches
	MessagesEnabled     bool `gorm:"not null" json:"messagesEnabled"`
	MediaEnabled        bool `gorm:"not null" json:"mediaEnabled"`
	AppointmentsEnabled bool `gorm:"not null" json:"appointmentsEnabled"`

	// Plan
	PlanType          string `gorm:"size:50;not null" json:"planType"`
	PlanMessagesLimit int    `gorm:"not null" json:"planMessagesLimit"`
	PlanMessagesUsed  int    `gorm:"not null" json:"planMessagesUsed"`

	// UpdatedAt last merge update
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name
func (OrganizationSettings) TableName() string {
	return "organization_settings"
}

// DefaultOrganizationSettings record inserted when none exists
func DefaultOrganizationSettings(now time.Time) *OrganizationSettings {
	return &OrganizationSettings{
		ID:                  SingletonID,
		Name:                "Colégio Vila Educação",
		Subdomain:           "colegiovila",
		PrimaryColor:        "#1976d2",
		Language:            "pt_BR",
		Country:             "BR",
		Type:                "school",
		MessagesEnabled:     true,
		MediaEnabled:        true,
		AppointmentsEnabled: false,
		PlanType:            "premium",
		PlanMessagesLimit:   1000,
		PlanMessagesUsed:    0,
		UpdatedAt:           now,
	}
}

// OrganizationSettingsPatch partial update, nil fields are left untouched
type OrganizationSettingsPatch struct {
	Name                *string `json:"name" binding:"omitempty,min=1,max=255"`
	Subdomain           *string `json:"subdomain" binding:"omitempty,min=1,max=100"`
	LogoURL             *string `json:"logoUrl" binding:"omitempty,max=1000"`
	PrimaryColor        *string `json:"primaryColor" binding:"omitempty,max=20"`
	Language            *string `json:"language" binding:"omitempty,max=20"`
	Country             *string `json:"country" binding:"omitempty,max=10"`
	Type                *string `json:"type" binding:"omitempty,max=50"`
	MessagesEnabled     *bool   `json:"messagesEnabled"`
	MediaEnabled        *bool   `json:"mediaEnabled"`
	AppointmentsEnabled *bool   `json:"appointmentsEnabled"`
	PlanType            *string `json:"planType" binding:"omitempty,max=50"`
	PlanMessagesLimit   *int    `json:"planMessagesLimit" binding:"omitempty,min=0"`
	PlanMessagesUsed    *int    `json:"planMessagesUsed" binding:"omitempty,min=0"`
}

// Apply merges the present fields into s
func (p OrganizationSettingsPatch) Apply(s *OrganizationSettings) {
	setString(&s.Name, p.Name)
	setString(&s.Subdomain, p.Subdomain)
	if p.LogoURL != nil {
		logo := *p.LogoURL
		s.LogoURL = &logo
	}
	setString(&s.PrimaryColor, p.PrimaryColor)
	setString(&s.Language, p.Language)
	setString(&s.Country, p.Country)
	setString(&s.Type, p.Type)
	setBool(&s.MessagesEnabled, p.MessagesEnabled)
	setBool(&s.MediaEnabled, p.MediaEnabled)
	setBool(&s.AppointmentsEnabled, p.AppointmentsEnabled)
	setString(&s.PlanType, p.PlanType)
	setInt(&s.PlanMessagesLimit, p.PlanMessagesLimit)
	setInt(&s.PlanMessagesUsed, p.PlanMessagesUsed)
}

// ===========================================================================
// DashboardKpi (singleton)
// Headline numbers of the dashboard, all zero by default
// ===========================================================================

// DashboardKpi dashboard headline indicators
type DashboardKpi struct {
	// ID always SingletonID
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	ReadRate           float64 `gorm:"not null;default:0" json:"readRate"`
	AdoptionRate       float64 `gorm:"not null;default:0" json:"adoptionRate"`
	AdoptionTotal      int     `gorm:"not null;default:0" json:"adoptionTotal"`
	AdoptionRegistered int     `gorm:"not null;default:0" json:"adoptionRegistered"`
	CsatScore          float64 `gorm:"not null;default:0" json:"csatScore"`
	ReadRateChange     float64 `gorm:"not null;default:0" json:"readRateChange"`
	AdoptionRateChange float64 `gorm:"not null;default:0" json:"adoptionRateChange"`
	CsatScoreChange    float64 `gorm:"not null;default:0" json:"csatScoreChange"`

	// UpdatedAt last update or refresh
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name
func (DashboardKpi) TableName() string {
	return "dashboard_kpis"
}

// DefaultDashboardKpi zero KPI record inserted when none exists
func DefaultDashboardKpi(now time.Time) *DashboardKpi {
	return &DashboardKpi{ID: SingletonID, UpdatedAt: now}
}

// DashboardKpiPatch partial update, nil fields are left untouched
type DashboardKpiPatch struct {
	ReadRate           *float64 `json:"readRate" binding:"omitempty,min=0,max=100"`
	AdoptionRate       *float64 `json:"adoptionRate" binding:"omitempty,min=0,max=100"`
	AdoptionTotal      *int     `json:"adoptionTotal" binding:"omitempty,min=0"`
	AdoptionRegistered *int     `json:"adoptionRegistered" binding:"omitempty,min=0"`
	CsatScore          *float64 `json:"csatScore" binding:"omitempty,min=0,max=5"`
	ReadRateChange     *float64 `json:"readRateChange"`
	AdoptionRateChange *float64 `json:"adoptionRateChange"`
	CsatScoreChange    *float64 `json:"csatScoreChange"`
}

// Apply merges the present fields into k
func (p DashboardKpiPatch) Apply(k *DashboardKpi) {
	setFloat(&k.ReadRate, p.ReadRate)
	setFloat(&k.AdoptionRate, p.AdoptionRate)
	setInt(&k.AdoptionTotal, p.AdoptionTotal)
	setInt(&k.AdoptionRegistered, p.AdoptionRegistered)
	setFloat(&k.CsatScore, p.CsatScore)
	setFloat(&k.ReadRateChange, p.ReadRateChange)
	setFloat(&k.AdoptionRateChange, p.AdoptionRateChange)
	setFloat(&k.CsatScoreChange, p.CsatScoreChange)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
