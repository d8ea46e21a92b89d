package form

import (
	"reflect"
	"testing"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
)

func TestApplyFieldChangeKnownPaths(t *testing.T) {
	f := New(nil)

	// string value
	f.ApplyFieldChange("mainSiteAddress", "123 abc")
	if f.Agency.MainSiteAddress != "123 abc" {
		t.Errorf("mainSiteAddress = %q, want %q", f.Agency.MainSiteAddress, "123 abc")
	}

	// embedded string value
	f.ApplyFieldChange("tableContent.name", "Test Name")
	if f.Agency.TableContent.Name != "Test Name" {
		t.Errorf("tableContent.name = %q, want %q", f.Agency.TableContent.Name, "Test Name")
	}

	// string list replacement
	f.ApplyFieldChange("additionalAddresses", []string{"address1"})
	if !reflect.DeepEqual(f.Agency.AdditionalAddresses, []string{"address1"}) {
		t.Errorf("additionalAddresses = %v, want [address1]", f.Agency.AdditionalAddresses)
	}

	// contact list replacement
	contacts := []domain.Contact{{Contact: "A", Position: "S", PhoneNumber: "D", Email: "F"}}
	f.ApplyFieldChange("contacts", contacts)
	if !reflect.DeepEqual(f.Agency.Contacts, contacts) {
		t.Errorf("contacts = %v, want %v", f.Agency.Contacts, contacts)
	}

	// boolean value
	f.ApplyFieldChange("distributionDays.monday", true)
	if !f.Agency.DistributionDays.Monday {
		t.Error("distributionDays.monday = false, want true")
	}

	// number value
	f.ApplyFieldChange("standAloneFreezer", 3)
	if f.Agency.StandAloneFreezer != 3 {
		t.Errorf("standAloneFreezer = %d, want 3", f.Agency.StandAloneFreezer)
	}

	// setting the same fields again replaces the previous values
	f.ApplyFieldChange("distributionDays.monday", false)
	if f.Agency.DistributionDays.Monday {
		t.Error("distributionDays.monday = true, want false")
	}
	f.ApplyFieldChange("mainSiteAddress", "456 def")
	if f.Agency.MainSiteAddress != "456 def" {
		t.Errorf("mainSiteAddress = %q, want %q", f.Agency.MainSiteAddress, "456 def")
	}
}

func TestApplyFieldChangeUnknownPaths(t *testing.T) {
	f := New(nil)
	f.ApplyFieldChange("mainSiteAddress", "123 abc")
	before := f.Agency

	// unknown top-level key
	f.ApplyFieldChange("keyThatShouldNotBeUsed", "abcd")
	if !reflect.DeepEqual(f.Agency, before) {
		t.Error("unknown top-level key modified the state")
	}

	// unknown nested key under a known section
	f.ApplyFieldChange("tableContent.unknownKey", "abcd")
	if !reflect.DeepEqual(f.Agency, before) {
		t.Error("unknown nested key modified the state")
	}

	// unknown day name
	f.ApplyFieldChange("distributionDays.someday", true)
	if !reflect.DeepEqual(f.Agency, before) {
		t.Error("unknown weekday modified the state")
	}

	// known key, wrong value shape
	f.ApplyFieldChange("mainSiteAddress", 42)
	if !reflect.DeepEqual(f.Agency, before) {
		t.Error("type-mismatched value modified the state")
	}

	// count fields accept whole JSON numbers only
	f.ApplyFieldChange("standAloneFreezer", 3.7)
	if !reflect.DeepEqual(f.Agency, before) {
		t.Error("fractional number modified the state")
	}
	f.ApplyFieldChange("standAloneFreezer", float64(3))
	if f.Agency.StandAloneFreezer != 3 {
		t.Errorf("standAloneFreezer = %d, want 3", f.Agency.StandAloneFreezer)
	}
}

func TestAddRemoveAddress(t *testing.T) {
	f := New(nil)

	f.ApplyFieldChange("additionalAddresses", []string{"address1"})
	f.AppendAddress()
	if want := []string{"address1", ""}; !reflect.DeepEqual(f.Agency.AdditionalAddresses, want) {
		t.Errorf("after append: %v, want %v", f.Agency.AdditionalAddresses, want)
	}
	f.AppendAddress()
	if want := []string{"address1", "", ""}; !reflect.DeepEqual(f.Agency.AdditionalAddresses, want) {
		t.Errorf("after second append: %v, want %v", f.Agency.AdditionalAddresses, want)
	}

	f.RemoveLastAddress()
	f.RemoveLastAddress()
	if want := []string{"address1"}; !reflect.DeepEqual(f.Agency.AdditionalAddresses, want) {
		t.Errorf("after two removals: %v, want %v", f.Agency.AdditionalAddresses, want)
	}
}

func TestRemoveAddressFromEmptyList(t *testing.T) {
	f := New(nil)
	f.ApplyFieldChange("additionalAddresses", []string{})

	f.RemoveLastAddress()
	if len(f.Agency.AdditionalAddresses) != 0 {
		t.Errorf("removal from empty list: %v, want empty", f.Agency.AdditionalAddresses)
	}
}

func TestAddRemoveContact(t *testing.T) {
	f := New(nil)
	blank := domain.Contact{}
	contact1 := domain.Contact{Contact: "A", Position: "S", PhoneNumber: "D", Email: "F"}
	contact2 := domain.Contact{Contact: "Q", Position: "W", PhoneNumber: "E", Email: "R"}

	f.ApplyFieldChange("contacts", []domain.Contact{contact1})
	f.AppendContact()
	if want := []domain.Contact{contact1, blank}; !reflect.DeepEqual(f.Agency.Contacts, want) {
		t.Errorf("after append: %v, want %v", f.Agency.Contacts, want)
	}
	f.AppendContact()
	if want := []domain.Contact{contact1, blank, blank}; !reflect.DeepEqual(f.Agency.Contacts, want) {
		t.Errorf("after second append: %v, want %v", f.Agency.Contacts, want)
	}

	f.ApplyFieldChange("contacts", []domain.Contact{contact1, contact2})
	f.RemoveLastContact()
	if want := []domain.Contact{contact1}; !reflect.DeepEqual(f.Agency.Contacts, want) {
		t.Errorf("after removal: %v, want %v", f.Agency.Contacts, want)
	}

	f.RemoveLastContact()
	f.RemoveLastContact() // already empty, must not underflow
	if len(f.Agency.Contacts) != 0 {
		t.Errorf("after removing everything: %v, want empty", f.Agency.Contacts)
	}
}

func TestIsFieldValid(t *testing.T) {
	f := New(nil)

	// everything is valid before any error list arrives
	if !f.IsFieldValid("field1") || !f.IsFieldValid("field2") {
		t.Error("fields should be valid before validation has occurred")
	}

	f.SetErrors([]string{"field1", "field3", "field5"})

	for _, name := range []string{"field1", "field3", "field5"} {
		if f.IsFieldValid(name) {
			t.Errorf("IsFieldValid(%q) = true, want false", name)
		}
	}
	for _, name := range []string{"field2", "field4"} {
		if !f.IsFieldValid(name) {
			t.Errorf("IsFieldValid(%q) = false, want true", name)
		}
	}
}

func TestNewBlankTemplate(t *testing.T) {
	f := New(nil)

	if want := []string{""}; !reflect.DeepEqual(f.Agency.AdditionalAddresses, want) {
		t.Errorf("blank additionalAddresses = %v, want %v", f.Agency.AdditionalAddresses, want)
	}
	if want := []domain.Contact{{}}; !reflect.DeepEqual(f.Agency.Contacts, want) {
		t.Errorf("blank contacts = %v, want %v", f.Agency.Contacts, want)
	}
}

func TestNewCopiesInitialRecord(t *testing.T) {
	initial := &domain.Agency{
		AdditionalAddresses: []string{"a"},
		Contacts:            []domain.Contact{{Contact: "A"}},
	}
	f := New(initial)

	f.AppendAddress()
	f.ApplyFieldChange("contacts", []domain.Contact{})

	if len(initial.AdditionalAddresses) != 1 || len(initial.Contacts) != 1 {
		t.Error("editing the form must not alias the initial record's slices")
	}
}
