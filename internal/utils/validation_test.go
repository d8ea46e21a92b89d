package utils

import (
	"slices"
	"testing"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
)

// validAgency builds a record that passes every field rule.
func validAgency() *domain.Agency {
	return &domain.Agency{
		TableContent: domain.TableContent{
			AgencyNumber: 12,
			Name:         "Food Bank A",
			Status:       "Active",
			Region:       "Central",
			City:         "San Diego",
			Phone:        "(619) 555-0214",
			Staff:        "Mia Chen",
		},
		MainSiteAddress:              "501 Harbor Dr",
		CityCouncilDistrict:          "3",
		CountyDistrict:               "1",
		StateAssemblyDistrict:        "78",
		StateSenateDistrict:          "39",
		FederalCongressionalDistrict: "53",
		BillingAddress:               "501 Harbor Dr",
		BillingZipcode:               "94105",
		Contacts: []domain.Contact{
			{
				Contact:     "Jamie Ortiz",
				Position:    "Director",
				PhoneNumber: "619-555-0199",
				Email:       "jamie@example.org",
			},
		},
		ScheduledNextVisit:        "10/14/2026",
		DateOfMostRecentAgreement: "01/02/2026",
		DateOfInitialPartnership:  "06/30/2019",
		Monitored:                 "03/15/2026",
		FoodSafetyCertification:   "05/01/2026",
		DistributionStartDate:     "09/01/2026",
		DistributionFrequency:     1,
	}
}

func TestValidateAgencyValidRecord(t *testing.T) {
	if fields := ValidateAgency(validAgency()); len(fields) != 0 {
		t.Errorf("valid record failed validation: %v", fields)
	}
}

func TestValidateAgencyRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *domain.Agency)
		field  string
	}{
		{"empty name", func(a *domain.Agency) { a.TableContent.Name = "" }, "tableContent.name"},
		{"whitespace name", func(a *domain.Agency) { a.TableContent.Name = "   " }, "tableContent.name"},
		{"zero agency number", func(a *domain.Agency) { a.TableContent.AgencyNumber = 0 }, "tableContent.agencyNumber"},
		{"empty status", func(a *domain.Agency) { a.TableContent.Status = "" }, "tableContent.status"},
		{"empty phone", func(a *domain.Agency) { a.TableContent.Phone = "" }, "tableContent.phone"},
		{"empty main site address", func(a *domain.Agency) { a.MainSiteAddress = "" }, "mainSiteAddress"},
		{"empty billing address", func(a *domain.Agency) { a.BillingAddress = "" }, "billingAddress"},
		{"bad zipcode", func(a *domain.Agency) { a.BillingZipcode = "12ab5" }, "billingZipcode"},
		{"short zipcode", func(a *domain.Agency) { a.BillingZipcode = "941" }, "billingZipcode"},
		{"zero frequency", func(a *domain.Agency) { a.DistributionFrequency = 0 }, "distributionFrequency"},
		{"bad next visit date", func(a *domain.Agency) { a.ScheduledNextVisit = "2026-10-14" }, "scheduledNextVisit"},
		{"bad monitored date", func(a *domain.Agency) { a.Monitored = "13/40/2026" }, "monitored"},
		{"bad start date", func(a *domain.Agency) { a.DistributionStartDate = "soon" }, "distributionStartDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agency := validAgency()
			tt.mutate(agency)
			fields := ValidateAgency(agency)
			if !slices.Contains(fields, tt.field) {
				t.Errorf("expected %q in failed fields, got %v", tt.field, fields)
			}
		})
	}
}

func TestValidateAgencyZipcodeWithExtension(t *testing.T) {
	agency := validAgency()
	agency.BillingZipcode = "94105-1234"
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("zip+4 should be accepted, got %v", fields)
	}
}

func TestValidateAgencyContacts(t *testing.T) {
	agency := validAgency()
	agency.Contacts = append(agency.Contacts, domain.Contact{
		Contact:     "Pat Doe",
		Position:    "Coordinator",
		PhoneNumber: "not a phone",
		Email:       "not-an-email",
	})

	fields := ValidateAgency(agency)
	if !slices.Contains(fields, "contacts.1.phoneNumber") {
		t.Errorf("expected contacts.1.phoneNumber in %v", fields)
	}
	if !slices.Contains(fields, "contacts.1.email") {
		t.Errorf("expected contacts.1.email in %v", fields)
	}
	if slices.Contains(fields, "contacts.0.phoneNumber") || slices.Contains(fields, "contacts.0.email") {
		t.Errorf("first contact should be valid, got %v", fields)
	}
}

func TestValidateAgencyFileAuditOptional(t *testing.T) {
	agency := validAgency()
	agency.FileAudit = ""
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("empty fileAudit must be allowed, got %v", fields)
	}

	agency.FileAudit = "junk"
	if fields := ValidateAgency(agency); !slices.Contains(fields, "fileAudit") {
		t.Errorf("malformed fileAudit must fail, got %v", fields)
	}

	agency.FileAudit = "04/01/2025"
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("well-formed fileAudit must pass, got %v", fields)
	}
}

func TestValidateAgencyDistributionStartTimes(t *testing.T) {
	agency := validAgency()
	agency.DistributionDays.Monday = true
	agency.DistributionStartTimes.Monday = ""

	fields := ValidateAgency(agency)
	if !slices.Contains(fields, "distributionStartTimes.monday") {
		t.Errorf("expected distributionStartTimes.monday in %v", fields)
	}

	agency.DistributionStartTimes.Monday = "9:00 AM"
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("selected day with a start time must pass, got %v", fields)
	}

	// unselected days never require a time
	agency.DistributionDays.Monday = false
	agency.DistributionStartTimes.Monday = ""
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("unselected day must not require a time, got %v", fields)
	}
}

func TestValidateAgencyRetailRescue(t *testing.T) {
	agency := validAgency()
	agency.RetailRescueDays.Friday = true

	fields := ValidateAgency(agency)
	if !slices.Contains(fields, "retailRescueStartTimes.friday") {
		t.Errorf("expected retailRescueStartTimes.friday in %v", fields)
	}
	if !slices.Contains(fields, "retailRescueLocations.friday") {
		t.Errorf("expected retailRescueLocations.friday in %v", fields)
	}

	agency.RetailRescueStartTimes.Friday = "7:30 AM"
	agency.RetailRescueLocations.Friday = "Grocer on 5th"
	if fields := ValidateAgency(agency); len(fields) != 0 {
		t.Errorf("complete retail rescue day must pass, got %v", fields)
	}
}

func TestValidateAgencyDateLists(t *testing.T) {
	agency := validAgency()
	agency.UserSelectedDates = []string{"10/01/2026", "not a date"}
	agency.UserExcludedDates = []string{"32/01/2026"}

	fields := ValidateAgency(agency)
	if !slices.Contains(fields, "userSelectedDates.1") {
		t.Errorf("expected userSelectedDates.1 in %v", fields)
	}
	if slices.Contains(fields, "userSelectedDates.0") {
		t.Errorf("userSelectedDates.0 is valid, got %v", fields)
	}
	if !slices.Contains(fields, "userExcludedDates.0") {
		t.Errorf("expected userExcludedDates.0 in %v", fields)
	}
}

func TestValidateAgencyTasks(t *testing.T) {
	agency := validAgency()
	agency.Tasks = []domain.Task{
		{Title: "Renew agreement", DueDate: "11/01/2026", Status: "open"},
		{Title: "", DueDate: "later", Status: ""},
	}

	fields := ValidateAgency(agency)
	for _, want := range []string{"tasks.1.title", "tasks.1.dueDate", "tasks.1.status"} {
		if !slices.Contains(fields, want) {
			t.Errorf("expected %q in %v", want, fields)
		}
	}
	if slices.Contains(fields, "tasks.0.title") {
		t.Errorf("first task is valid, got %v", fields)
	}
}

func TestValidateAgencyFieldOrderAndDedup(t *testing.T) {
	agency := validAgency()
	agency.TableContent.Name = ""
	agency.BillingZipcode = ""

	fields := ValidateAgency(agency)
	nameIdx := slices.Index(fields, "tableContent.name")
	zipIdx := slices.Index(fields, "billingZipcode")
	if nameIdx == -1 || zipIdx == -1 || nameIdx > zipIdx {
		t.Errorf("fields not in rule order: %v", fields)
	}

	seen := map[string]int{}
	for _, f := range fields {
		seen[f]++
		if seen[f] > 1 {
			t.Errorf("duplicate field %q in %v", f, fields)
		}
	}
}

func TestDateHelper(t *testing.T) {
	valid := []string{"01/02/2026", "12/31/1999", " 06/15/2020 "}
	for _, s := range valid {
		if !isDate(s) {
			t.Errorf("isDate(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "2026/01/02", "02/30/2026", "13/01/2026", "abc"}
	for _, s := range invalid {
		if isDate(s) {
			t.Errorf("isDate(%q) = true, want false", s)
		}
	}
}

func TestPhoneHelper(t *testing.T) {
	valid := []string{"619-555-0199", "(619) 555-0199", "6195550199", "+1 619 555 0199", "1-619-555-0199"}
	for _, s := range valid {
		if !isUSPhone(s) {
			t.Errorf("isUSPhone(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "555-0199", "619-555-019", "phone", "++1 619 555 0199"}
	for _, s := range invalid {
		if isUSPhone(s) {
			t.Errorf("isUSPhone(%q) = true, want false", s)
		}
	}
}
