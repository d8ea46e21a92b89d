package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// dateLayout is MM/DD/YYYY, the format the profile form collects dates in.
const dateLayout = "01/02/2006"

var (
	validate = validator.New()

	// 5-digit US zip, optionally with the +4 extension
	zipcodeRegexp = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	// US phone number, with optional country code, separators and area-code parens
	phoneRegexp = regexp.MustCompile(`^(\+?1[ .-]?)?(\([0-9]{3}\)|[0-9]{3})[ .-]?[0-9]{3}[ .-]?[0-9]{4}$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isDate(s string) bool {
	_, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return err == nil
}

func isZipcode(s string) bool {
	return zipcodeRegexp.MatchString(strings.TrimSpace(s))
}

func isUSPhone(s string) bool {
	return phoneRegexp.MatchString(strings.TrimSpace(s))
}

func isEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "email") == nil
}

// fieldCollector accumulates failed field names in rule order, dropping
// duplicates.
type fieldCollector struct {
	fields []string
	seen   map[string]bool
}

func newFieldCollector() *fieldCollector {
	return &fieldCollector{
		fields: make([]string, 0),
		seen:   make(map[string]bool),
	}
}

func (c *fieldCollector) fail(name string) {
	if c.seen[name] {
		return
	}
	c.seen[name] = true
	c.fields = append(c.fields, name)
}

func (c *fieldCollector) check(ok bool, name string) {
	if !ok {
		c.fail(name)
	}
}

// ValidateAgency runs every field rule over the record and returns the dotted
// names of the fields that failed, in rule order. An empty result means the
// record may be persisted. List entries are reported with their index, e.g.
// "contacts.0.email".
func ValidateAgency(agency *domain.Agency) []string {
	c := newFieldCollector()

	c.check(agency.TableContent.AgencyNumber > 0, "tableContent.agencyNumber")
	c.check(!isBlank(agency.TableContent.Name), "tableContent.name")
	c.check(!isBlank(agency.TableContent.Status), "tableContent.status")
	c.check(!isBlank(agency.TableContent.Region), "tableContent.region")
	c.check(!isBlank(agency.TableContent.City), "tableContent.city")
	c.check(!isBlank(agency.TableContent.Phone), "tableContent.phone")
	c.check(!isBlank(agency.TableContent.Staff), "tableContent.staff")

	c.check(!isBlank(agency.MainSiteAddress), "mainSiteAddress")
	c.check(!isBlank(agency.CityCouncilDistrict), "cityCouncilDistrict")
	c.check(!isBlank(agency.CountyDistrict), "countyDistrict")
	c.check(!isBlank(agency.StateAssemblyDistrict), "stateAssemblyDistrict")
	c.check(!isBlank(agency.StateSenateDistrict), "stateSenateDistrict")
	c.check(!isBlank(agency.FederalCongressionalDistrict), "federalCongressionalDistrict")
	c.check(!isBlank(agency.BillingAddress), "billingAddress")
	c.check(isZipcode(agency.BillingZipcode), "billingZipcode")

	for i, contact := range agency.Contacts {
		c.check(!isBlank(contact.Contact), fmt.Sprintf("contacts.%d.contact", i))
		c.check(!isBlank(contact.Position), fmt.Sprintf("contacts.%d.position", i))
		c.check(isUSPhone(contact.PhoneNumber), fmt.Sprintf("contacts.%d.phoneNumber", i))
		c.check(isEmail(contact.Email), fmt.Sprintf("contacts.%d.email", i))
	}

	c.check(isDate(agency.ScheduledNextVisit), "scheduledNextVisit")
	c.check(isDate(agency.DateOfMostRecentAgreement), "dateOfMostRecentAgreement")
	c.check(isDate(agency.DateOfInitialPartnership), "dateOfInitialPartnership")
	if !isBlank(agency.FileAudit) {
		c.check(isDate(agency.FileAudit), "fileAudit")
	}
	c.check(isDate(agency.Monitored), "monitored")
	c.check(isDate(agency.FoodSafetyCertification), "foodSafetyCertification")

	// a distribution start time is only required on days the agency actually
	// distributes
	for _, day := range domain.Weekdays {
		selected, _ := agency.DistributionDays.Get(day)
		if !selected {
			continue
		}
		startTime, _ := agency.DistributionStartTimes.Get(day)
		c.check(!isBlank(startTime), "distributionStartTimes."+day)
	}

	c.check(isDate(agency.DistributionStartDate), "distributionStartDate")
	c.check(agency.DistributionFrequency > 0, "distributionFrequency")

	for i, date := range agency.UserSelectedDates {
		c.check(isDate(date), fmt.Sprintf("userSelectedDates.%d", i))
	}
	for i, date := range agency.UserExcludedDates {
		c.check(isDate(date), fmt.Sprintf("userExcludedDates.%d", i))
	}

	// same conditional pattern for retail rescue, which also needs a pickup
	// location per selected day
	for _, day := range domain.Weekdays {
		selected, _ := agency.RetailRescueDays.Get(day)
		if !selected {
			continue
		}
		startTime, _ := agency.RetailRescueStartTimes.Get(day)
		c.check(!isBlank(startTime), "retailRescueStartTimes."+day)
		location, _ := agency.RetailRescueLocations.Get(day)
		c.check(!isBlank(location), "retailRescueLocations."+day)
	}

	for i, task := range agency.Tasks {
		c.check(!isBlank(task.Title), fmt.Sprintf("tasks.%d.title", i))
		c.check(isDate(task.DueDate), fmt.Sprintf("tasks.%d.dueDate", i))
		c.check(!isBlank(task.Status), fmt.Sprintf("tasks.%d.status", i))
	}

	return c.fields
}
