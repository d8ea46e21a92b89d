// Package form holds the editable in-memory snapshot of one agency profile.
// A Form is owned by a single editing session; field edits arrive as dotted
// paths ("tableContent.name", "distributionDays.monday") and edits naming an
// unknown field are silently dropped, so the state shape fixed at
// construction never gains keys.
package form

import (
	"math"
	"slices"
	"strings"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
)

type Form struct {
	Agency domain.Agency

	// field names rejected by the server on the last submit; nil until then
	errors []string
}

// New builds a form from an existing record, or a blank template when initial
// is nil. The blank template starts with one empty additional address and one
// blank contact so the corresponding form sections render a first row.
func New(initial *domain.Agency) *Form {
	f := &Form{}
	if initial != nil {
		f.Agency = *initial
		f.Agency.AdditionalAddresses = slices.Clone(initial.AdditionalAddresses)
		f.Agency.UserSelectedDates = slices.Clone(initial.UserSelectedDates)
		f.Agency.UserExcludedDates = slices.Clone(initial.UserExcludedDates)
		f.Agency.Contacts = slices.Clone(initial.Contacts)
		f.Agency.Tasks = slices.Clone(initial.Tasks)
		return f
	}

	f.Agency.AdditionalAddresses = []string{""}
	f.Agency.Contacts = []domain.Contact{{}}
	f.Agency.UserSelectedDates = []string{}
	f.Agency.UserExcludedDates = []string{}
	f.Agency.Tasks = []domain.Task{}
	return f
}

// ApplyFieldChange replaces the value at a dotted path with value. Paths are
// resolved one segment at a time; if either segment is unknown, or the value
// does not have the field's shape, the state is left untouched.
func (f *Form) ApplyFieldChange(path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if nested {
		f.applyNested(head, rest, value)
		return
	}
	f.applyTopLevel(head, value)
}

func (f *Form) applyNested(head, field string, value any) {
	switch head {
	case "tableContent":
		f.applyTableContent(field, value)
	case "distributionDays":
		if b, ok := asBool(value); ok {
			f.Agency.DistributionDays.Set(field, b)
		}
	case "distributionStartTimes":
		if s, ok := asString(value); ok {
			f.Agency.DistributionStartTimes.Set(field, s)
		}
	case "retailRescueDays":
		if b, ok := asBool(value); ok {
			f.Agency.RetailRescueDays.Set(field, b)
		}
	case "retailRescueStartTimes":
		if s, ok := asString(value); ok {
			f.Agency.RetailRescueStartTimes.Set(field, s)
		}
	case "retailRescueLocations":
		if s, ok := asString(value); ok {
			f.Agency.RetailRescueLocations.Set(field, s)
		}
	}
}

func (f *Form) applyTableContent(field string, value any) {
	if field == "agencyNumber" {
		if n, ok := asNumber(value); ok {
			f.Agency.TableContent.AgencyNumber = n
		}
		return
	}

	s, ok := asString(value)
	if !ok {
		return
	}
	switch field {
	case "name":
		f.Agency.TableContent.Name = s
	case "status":
		f.Agency.TableContent.Status = s
	case "region":
		f.Agency.TableContent.Region = s
	case "city":
		f.Agency.TableContent.City = s
	case "phone":
		f.Agency.TableContent.Phone = s
	case "staff":
		f.Agency.TableContent.Staff = s
	}
}

func (f *Form) applyTopLevel(name string, value any) {
	switch name {
	case "mainSiteAddress":
		f.setString(&f.Agency.MainSiteAddress, value)
	case "cityCouncilDistrict":
		f.setString(&f.Agency.CityCouncilDistrict, value)
	case "countyDistrict":
		f.setString(&f.Agency.CountyDistrict, value)
	case "stateAssemblyDistrict":
		f.setString(&f.Agency.StateAssemblyDistrict, value)
	case "stateSenateDistrict":
		f.setString(&f.Agency.StateSenateDistrict, value)
	case "federalCongressionalDistrict":
		f.setString(&f.Agency.FederalCongressionalDistrict, value)
	case "billingAddress":
		f.setString(&f.Agency.BillingAddress, value)
	case "billingZipcode":
		f.setString(&f.Agency.BillingZipcode, value)
	case "scheduledNextVisit":
		f.setString(&f.Agency.ScheduledNextVisit, value)
	case "dateOfMostRecentAgreement":
		f.setString(&f.Agency.DateOfMostRecentAgreement, value)
	case "dateOfInitialPartnership":
		f.setString(&f.Agency.DateOfInitialPartnership, value)
	case "fileAudit":
		f.setString(&f.Agency.FileAudit, value)
	case "monitored":
		f.setString(&f.Agency.Monitored, value)
	case "foodSafetyCertification":
		f.setString(&f.Agency.FoodSafetyCertification, value)
	case "distributionStartDate":
		f.setString(&f.Agency.DistributionStartDate, value)

	case "distributionFrequency":
		f.setNumber(&f.Agency.DistributionFrequency, value)
	case "standAloneFreezer":
		f.setNumber(&f.Agency.StandAloneFreezer, value)
	case "freezerFridge":
		f.setNumber(&f.Agency.FreezerFridge, value)
	case "chestFreezer":
		f.setNumber(&f.Agency.ChestFreezer, value)
	case "singleDoorFreezer":
		f.setNumber(&f.Agency.SingleDoorFreezer, value)
	case "freezerFridgeCombo":
		f.setNumber(&f.Agency.FreezerFridgeCombo, value)
	case "walkInFreezer":
		f.setNumber(&f.Agency.WalkInFreezer, value)
	case "doubleDoorFridge":
		f.setNumber(&f.Agency.DoubleDoorFridge, value)
	case "sideBySideFridge":
		f.setNumber(&f.Agency.SideBySideFridge, value)
	case "singleDoorFridge":
		f.setNumber(&f.Agency.SingleDoorFridge, value)
	case "walkInFridge":
		f.setNumber(&f.Agency.WalkInFridge, value)
	case "dryStorageClimateControl":
		f.setNumber(&f.Agency.DryStorageClimateControl, value)
	case "dryStorageNonClimateControl":
		f.setNumber(&f.Agency.DryStorageNonClimateControl, value)
	case "pickUpTruck":
		f.setNumber(&f.Agency.PickUpTruck, value)
	case "van":
		f.setNumber(&f.Agency.Van, value)
	case "car":
		f.setNumber(&f.Agency.Car, value)

	case "pantry":
		f.setBool(&f.Agency.Pantry, value)
	case "mealProgram":
		f.setBool(&f.Agency.MealProgram, value)
	case "homeboundDeliveryPartner":
		f.setBool(&f.Agency.HomeboundDeliveryPartner, value)
	case "largeScaleDistributionSite":
		f.setBool(&f.Agency.LargeScaleDistributionSite, value)
	case "residentialFacility":
		f.setBool(&f.Agency.ResidentialFacility, value)
	case "retailRescue":
		f.setBool(&f.Agency.RetailRescue, value)
	case "preparedFoodCapacity":
		f.setBool(&f.Agency.PreparedFoodCapacity, value)
	case "capacityWithRRD":
		f.setBool(&f.Agency.CapacityWithRRD, value)
	case "youth":
		f.setBool(&f.Agency.Youth, value)
	case "senior":
		f.setBool(&f.Agency.Senior, value)
	case "homeless":
		f.setBool(&f.Agency.Homeless, value)
	case "veteran":
		f.setBool(&f.Agency.Veteran, value)
	case "healthcare":
		f.setBool(&f.Agency.Healthcare, value)
	case "college":
		f.setBool(&f.Agency.College, value)
	case "disabilitySpecific":
		f.setBool(&f.Agency.DisabilitySpecific, value)
	case "residential":
		f.setBool(&f.Agency.Residential, value)
	case "immigrant":
		f.setBool(&f.Agency.Immigrant, value)

	case "additionalAddresses":
		f.setStringList(&f.Agency.AdditionalAddresses, value)
	case "userSelectedDates":
		f.setStringList(&f.Agency.UserSelectedDates, value)
	case "userExcludedDates":
		f.setStringList(&f.Agency.UserExcludedDates, value)
	case "contacts":
		if list, ok := value.([]domain.Contact); ok {
			f.Agency.Contacts = slices.Clone(list)
		}
	case "tasks":
		if list, ok := value.([]domain.Task); ok {
			f.Agency.Tasks = slices.Clone(list)
		}
	}
}

func (f *Form) setString(dst *string, value any) {
	if s, ok := asString(value); ok {
		*dst = s
	}
}

func (f *Form) setBool(dst *bool, value any) {
	if b, ok := asBool(value); ok {
		*dst = b
	}
}

func (f *Form) setNumber(dst *int, value any) {
	if n, ok := asNumber(value); ok {
		*dst = n
	}
}

func (f *Form) setStringList(dst *[]string, value any) {
	if list, ok := value.([]string); ok {
		*dst = slices.Clone(list)
	}
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func asBool(value any) (bool, bool) {
	b, ok := value.(bool)
	return b, ok
}

func asNumber(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		// decoded JSON numbers arrive as float64; a fractional value is
		// the wrong shape for a count field
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// AppendAddress adds an empty row to the additional-addresses list.
func (f *Form) AppendAddress() {
	f.Agency.AdditionalAddresses = append(f.Agency.AdditionalAddresses, "")
}

// RemoveLastAddress drops the last additional address; removing from an empty
// list is a no-op.
func (f *Form) RemoveLastAddress() {
	if n := len(f.Agency.AdditionalAddresses); n > 0 {
		f.Agency.AdditionalAddresses = f.Agency.AdditionalAddresses[:n-1]
	}
}

// AppendContact adds a blank contact row.
func (f *Form) AppendContact() {
	f.Agency.Contacts = append(f.Agency.Contacts, domain.Contact{})
}

// RemoveLastContact drops the last contact; removing from an empty list is a
// no-op.
func (f *Form) RemoveLastContact() {
	if n := len(f.Agency.Contacts); n > 0 {
		f.Agency.Contacts = f.Agency.Contacts[:n-1]
	}
}

// SetErrors records the field names the server rejected on the last submit.
func (f *Form) SetErrors(fields []string) {
	f.errors = slices.Clone(fields)
}

// IsFieldValid reports whether a field should render as valid. Every field is
// valid until a submit attempt comes back with an error list naming it.
func (f *Form) IsFieldValid(fieldName string) bool {
	return !slices.Contains(f.errors, fieldName)
}
