package seed

import (
	"log/slog"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
	"github.com/communityfoodshare/agency-manager/backend/internal/repository"
)

// starter dataset for demo environments: a handful of partner agencies with
// profiles that pass validation
var starterAgencies = []struct {
	number int
	name   string
	status string
	region string
	city   string
}{
	{101, "Harborview Food Pantry", "Active", "Central", "San Diego"},
	{102, "Mesa Community Kitchen", "Active", "East", "El Cajon"},
	{103, "Coastal Neighborhood Share", "Onboarding", "North", "Oceanside"},
	{104, "Valley Outreach Center", "Inactive", "South", "Chula Vista"},
}

func SeedStarterAgencies(repo *repository.Repository, generate func() *domain.Agency) {
	cnt := 0
	for _, s := range starterAgencies {
		agency := generate()
		agency.TableContent.AgencyNumber = s.number
		agency.TableContent.Name = s.name
		agency.TableContent.Status = s.status
		agency.TableContent.Region = s.region
		agency.TableContent.City = s.city

		if err := repo.CreateAgency(agency); err != nil {
			slog.Error("unable to insert starter agency", slog.String("name", s.name), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	slog.Info("starter agencies inserted", slog.Int("count", cnt))
}
