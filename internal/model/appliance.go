package model

import (
	"time"
)

// ApplianceType categorizes an appliance
type ApplianceType string

const (
	ApplianceHVAC       ApplianceType = "hvac"
	AppliancePlumbing   ApplianceType = "plumbing"
	ApplianceElectrical ApplianceType = "electrical"
	ApplianceKitchen    ApplianceType = "kitchen"
	ApplianceLaundry    ApplianceType = "laundry"
	ApplianceOther      ApplianceType = "other"
)

// ApplianceTypes lists all types in display order
func ApplianceTypes() []ApplianceType {
	return []ApplianceType{
		ApplianceHVAC,
		AppliancePlumbing,
		ApplianceElectrical,
		ApplianceKitchen,
		ApplianceLaundry,
		ApplianceOther,
	}
}

// Appliance represents a tracked appliance in the home
type Appliance struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Type             ApplianceType `json:"type"`
	Manufacturer     string        `json:"manufacturer,omitempty"`
	Model            string        `json:"model,omitempty"`
	SerialNumber     string        `json:"serial_number,omitempty"`
	Location         string        `json:"location,omitempty"`
	InstallDate      *time.Time    `json:"install_date,omitempty"`
	LastFilterChange *time.Time    `json:"last_filter_change,omitempty"`
}

// Age returns the appliance age in whole years, or -1 if unknown
func (a *Appliance) Age(today time.Time) int {
	if a.InstallDate == nil {
		return -1
	}
	years := today.Year() - a.InstallDate.Year()
	if today.YearDay() < a.InstallDate.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
