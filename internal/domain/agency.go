package domain

import (
	"time"
)

// Weekdays lists the days of the week in schedule order, using the same
// lowercase names the JSON wire format uses.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// TableContent holds the summary fields shown in the agency directory table.
type TableContent struct {
	AgencyNumber int    `json:"agencyNumber"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Region       string `json:"region"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Staff        string `json:"staff"`
}

type Contact struct {
	Contact     string `json:"contact"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type Task struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"`
}

// WeekdayFlags is a fixed set of per-weekday booleans (e.g. which days an
// agency runs a distribution).
type WeekdayFlags struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

func (f *WeekdayFlags) Get(day string) (bool, bool) {
	switch day {
	case "monday":
		return f.Monday, true
	case "tuesday":
		return f.Tuesday, true
	case "wednesday":
		return f.Wednesday, true
	case "thursday":
		return f.Thursday, true
	case "friday":
		return f.Friday, true
	case "saturday":
		return f.Saturday, true
	case "sunday":
		return f.Sunday, true
	default:
		return false, false
	}
}

func (f *WeekdayFlags) Set(day string, value bool) bool {
	switch day {
	case "monday":
		f.Monday = value
	case "tuesday":
		f.Tuesday = value
	case "wednesday":
		f.Wednesday = value
	case "thursday":
		f.Thursday = value
	case "friday":
		f.Friday = value
	case "saturday":
		f.Saturday = value
	case "sunday":
		f.Sunday = value
	default:
		return false
	}
	return true
}

// WeekdayStrings is a fixed set of per-weekday strings (start times, retail
// rescue locations).
type WeekdayStrings struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

func (s *WeekdayStrings) Get(day string) (string, bool) {
	switch day {
	case "monday":
		return s.Monday, true
	case "tuesday":
		return s.Tuesday, true
	case "wednesday":
		return s.Wednesday, true
	case "thursday":
		return s.Thursday, true
	case "friday":
		return s.Friday, true
	case "saturday":
		return s.Saturday, true
	case "sunday":
		return s.Sunday, true
	default:
		return "", false
	}
}

func (s *WeekdayStrings) Set(day string, value string) bool {
	switch day {
	case "monday":
		s.Monday = value
	case "tuesday":
		s.Tuesday = value
	case "wednesday":
		s.Wednesday = value
	case "thursday":
		s.Thursday = value
	case "friday":
		s.Friday = value
	case "saturday":
		s.Saturday = value
	case "sunday":
		s.Sunday = value
	default:
		return false
	}
	return true
}

// Agency is one partner organization's full profile. All date fields are
// MM/DD/YYYY strings, matching what the profile form collects.
type Agency struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	TableContent TableContent `json:"tableContent"`

	/* Location section */
	MainSiteAddress              string   `json:"mainSiteAddress"`
	CityCouncilDistrict          string   `json:"cityCouncilDistrict"`
	CountyDistrict               string   `json:"countyDistrict"`
	StateAssemblyDistrict        string   `json:"stateAssemblyDistrict"`
	StateSenateDistrict          string   `json:"stateSenateDistrict"`
	FederalCongressionalDistrict string   `json:"federalCongressionalDistrict"`
	AdditionalAddresses          []string `json:"additionalAddresses"`
	BillingAddress               string   `json:"billingAddress"`
	BillingZipcode               string   `json:"billingZipcode"`

	/* Contacts section */
	Contacts []Contact `json:"contacts"`

	/* Compliance section */
	ScheduledNextVisit        string `json:"scheduledNextVisit"`
	DateOfMostRecentAgreement string `json:"dateOfMostRecentAgreement"`
	DateOfInitialPartnership  string `json:"dateOfInitialPartnership"`
	FileAudit                 string `json:"fileAudit"`
	Monitored                 string `json:"monitored"`
	FoodSafetyCertification   string `json:"foodSafetyCertification"`

	/* Distribution section */
	DistributionDays       WeekdayFlags   `json:"distributionDays"`
	DistributionStartTimes WeekdayStrings `json:"distributionStartTimes"`
	DistributionStartDate  string         `json:"distributionStartDate"`
	DistributionFrequency  int            `json:"distributionFrequency"`
	UserSelectedDates      []string       `json:"userSelectedDates"`
	UserExcludedDates      []string       `json:"userExcludedDates"`

	// site type checkboxes
	Pantry                     bool `json:"pantry"`
	MealProgram                bool `json:"mealProgram"`
	HomeboundDeliveryPartner   bool `json:"homeboundDeliveryPartner"`
	LargeScaleDistributionSite bool `json:"largeScaleDistributionSite"`
	ResidentialFacility        bool `json:"residentialFacility"`

	/* Capacity section */
	// storage
	StandAloneFreezer           int `json:"standAloneFreezer"`
	FreezerFridge               int `json:"freezerFridge"`
	ChestFreezer                int `json:"chestFreezer"`
	SingleDoorFreezer           int `json:"singleDoorFreezer"`
	FreezerFridgeCombo          int `json:"freezerFridgeCombo"`
	WalkInFreezer               int `json:"walkInFreezer"`
	DoubleDoorFridge            int `json:"doubleDoorFridge"`
	SideBySideFridge            int `json:"sideBySideFridge"`
	SingleDoorFridge            int `json:"singleDoorFridge"`
	WalkInFridge                int `json:"walkInFridge"`
	DryStorageClimateControl    int `json:"dryStorageClimateControl"`
	DryStorageNonClimateControl int `json:"dryStorageNonClimateControl"`
	// transportation
	PickUpTruck int `json:"pickUpTruck"`
	Van         int `json:"van"`
	Car         int `json:"car"`

	/* Retail rescue section */
	RetailRescue           bool           `json:"retailRescue"`
	PreparedFoodCapacity   bool           `json:"preparedFoodCapacity"`
	CapacityWithRRD        bool           `json:"capacityWithRRD"`
	RetailRescueDays       WeekdayFlags   `json:"retailRescueDays"`
	RetailRescueStartTimes WeekdayStrings `json:"retailRescueStartTimes"`
	RetailRescueLocations  WeekdayStrings `json:"retailRescueLocations"`

	/* Demographics section */
	Youth              bool `json:"youth"`
	Senior             bool `json:"senior"`
	Homeless           bool `json:"homeless"`
	Veteran            bool `json:"veteran"`
	Healthcare         bool `json:"healthcare"`
	College            bool `json:"college"`
	DisabilitySpecific bool `json:"disabilitySpecific"`
	Residential        bool `json:"residential"`
	Immigrant          bool `json:"immigrant"`

	/* Tasks section */
	Tasks []Task `json:"tasks"`
}
