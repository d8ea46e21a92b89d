package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"Alex", "Maria", "James", "Sofia", "David", "Elena", "Carlos", "Grace",
	"Kevin", "Laura", "Miguel", "Dana", "Robert", "Priya", "Sam", "Nina",
}
var lastNames = []string{
	"Nguyen", "Garcia", "Smith", "Johnson", "Lee", "Martinez", "Brown",
	"Hernandez", "Kim", "Lopez", "Walker", "Patel", "Rivera", "Clark",
}

var regions = []string{"North", "South", "East", "West", "Central"}
var cities = []string{"San Diego", "Chula Vista", "Oceanside", "Escondido", "El Cajon", "National City"}
var orgSuffixes = []string{"Food Pantry", "Community Kitchen", "Outreach Center", "Neighborhood Share", "Care Coalition"}

var digits = "0123456789"

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Split(strings.ToLower(fullName), " ")
	username := ""
	for _, part := range parts {
		length := rand.Intn(len(part)) + 1
		username += part[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomain,
		Role:         domain.RoleStaff,
	}

	return user, nil
}

func randomDate() string {
	month := rand.Intn(12) + 1
	day := rand.Intn(28) + 1
	year := rand.Intn(6) + 2020
	return fmt.Sprintf("%02d/%02d/%d", month, day, year)
}

func randomPhone() string {
	return fmt.Sprintf("(619) 555-%04d", rand.Intn(10000))
}

// GenerateRandomAgency builds a profile that passes every field rule, for
// seeding development databases.
func GenerateRandomAgency() *domain.Agency {
	name := cities[rand.Intn(len(cities))] + " " + orgSuffixes[rand.Intn(len(orgSuffixes))]
	contactName := GenerateRandomFullName()

	agency := &domain.Agency{
		TableContent: domain.TableContent{
			AgencyNumber: rand.Intn(900) + 100,
			Name:         name,
			Status:       "Onboarding",
			Region:       regions[rand.Intn(len(regions))],
			City:         cities[rand.Intn(len(cities))],
			Phone:        randomPhone(),
			Staff:        GenerateRandomFullName(),
		},
		MainSiteAddress:              fmt.Sprintf("%d Main St", rand.Intn(9000)+100),
		CityCouncilDistrict:          fmt.Sprintf("%d", rand.Intn(9)+1),
		CountyDistrict:               fmt.Sprintf("%d", rand.Intn(5)+1),
		StateAssemblyDistrict:        fmt.Sprintf("%d", rand.Intn(80)+1),
		StateSenateDistrict:          fmt.Sprintf("%d", rand.Intn(40)+1),
		FederalCongressionalDistrict: fmt.Sprintf("%d", rand.Intn(53)+1),
		AdditionalAddresses:          []string{},
		BillingAddress:               fmt.Sprintf("%d Billing Ave", rand.Intn(9000)+100),
		BillingZipcode:               fmt.Sprintf("921%02d", rand.Intn(100)),
		Contacts: []domain.Contact{
			{
				Contact:     contactName,
				Position:    "Program Manager",
				PhoneNumber: randomPhone(),
				Email:       GenerateUsernameFromFullName(contactName) + "@example.org",
			},
		},
		ScheduledNextVisit:        randomDate(),
		DateOfMostRecentAgreement: randomDate(),
		DateOfInitialPartnership:  randomDate(),
		Monitored:                 randomDate(),
		FoodSafetyCertification:   randomDate(),
		DistributionStartDate:     randomDate(),
		DistributionFrequency:     rand.Intn(4) + 1,
		UserSelectedDates:         []string{},
		UserExcludedDates:         []string{},
		Pantry:                    rand.Intn(2) == 0,
		StandAloneFreezer:         rand.Intn(3),
		WalkInFridge:              rand.Intn(2),
		Van:                       rand.Intn(3),
	}

	// pick at least one distribution day and give it a start time
	day := domain.Weekdays[rand.Intn(len(domain.Weekdays))]
	agency.DistributionDays.Set(day, true)
	agency.DistributionStartTimes.Set(day, fmt.Sprintf("%d:00 AM", rand.Intn(4)+8))

	return agency
}
