package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentdesk/internal/cache"
	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
)

const summaryCacheTTL = 2 * time.Minute

// dashboardService computes role-aware metrics over the actor's
// accessible buildings.
type dashboardService struct {
	db     *gorm.DB
	access AccessServicer
	cache  *cache.Cache
}

// NewDashboardService creates a new DashboardServicer. The cache may be
// nil, which disables summary caching.
func NewDashboardService(db *gorm.DB, access AccessServicer, c *cache.Cache) DashboardServicer {
	return &dashboardService{db: db, access: access, cache: c}
}

func summaryCacheKey(actor Actor) string {
	return fmt.Sprintf("dashboard:summary:%s:%s", actor.AccountID, actor.UserID)
}

// Summary returns the headline metrics for the current month. Results are
// cached briefly per user since every page load hits this endpoint; refresh
// drops the cached copy and recomputes.
func (s *dashboardService) Summary(actor Actor, refresh bool) (*DashboardSummary, error) {
	ctx := context.Background()
	key := summaryCacheKey(actor)

	if refresh {
		s.cache.Delete(ctx, key)
	} else {
		var cached DashboardSummary
		if s.cache.GetJSON(ctx, key, &cached) {
			return &cached, nil
		}
	}

	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &DashboardSummary{
		UserRole:            string(actor.Role),
		AccessibleBuildings: len(buildingIDs),
		TotalBuildings:      len(buildingIDs),
		CurrentMonth:        now.Format("2006-01"),
	}
	if len(buildingIDs) == 0 {
		return summary, nil
	}

	var counts struct {
		Total    int64
		Occupied int64
	}
	if err := s.db.Model(&models.Unit{}).
		Select("COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS occupied", models.StatusOccupied).
		Where("building_id IN ?", buildingIDs).
		Scan(&counts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.TotalUnits = int(counts.Total)
	summary.OccupiedUnits = int(counts.Occupied)
	summary.VacantUnits = int(counts.Total - counts.Occupied)
	if counts.Total > 0 {
		summary.OccupancyRate = round2(float64(counts.Occupied) / float64(counts.Total) * 100)
	}

	var totalTenants int64
	if err := s.db.Model(&models.Tenant{}).
		Where("account_id = ?", actor.AccountID).
		Count(&totalTenants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.TotalTenants = int(totalTenants)

	var activeTenants int64
	if err := s.activeOccupancyQuery(buildingIDs).
		Distinct("occupancies.tenant_id").
		Count(&activeTenants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.ActiveTenants = int(activeTenants)

	month := models.MonthStart(now)
	var rentTotals struct {
		Expected int64
		Paid     int64
	}
	if err := s.monthRentQuery(buildingIDs, month).
		Select("COALESCE(SUM(rents.amount), 0) AS expected, COALESCE(SUM(rents.paid_amount), 0) AS paid").
		Scan(&rentTotals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.ExpectedMonthlyRent = rentTotals.Expected
	summary.CollectedMonthlyRent = rentTotals.Paid
	summary.PendingRent = rentTotals.Expected - rentTotals.Paid
	if rentTotals.Expected > 0 {
		summary.CollectionRate = round2(float64(rentTotals.Paid) / float64(rentTotals.Expected) * 100)
	}

	var issueCounts struct {
		Open   int64
		Urgent int64
	}
	if err := s.db.Model(&models.Issue{}).
		Select("COUNT(*) AS open, SUM(CASE WHEN issues.priority = ? THEN 1 ELSE 0 END) AS urgent", models.PriorityUrgent).
		Joins("JOIN units ON units.id = issues.unit_id").
		Where("units.building_id IN ? AND issues.status <> ?", buildingIDs, models.IssueResolved).
		Scan(&issueCounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.OpenIssues = int(issueCounts.Open)
	summary.UrgentIssues = int(issueCounts.Urgent)

	s.cache.SetJSON(ctx, key, summary, summaryCacheTTL)
	return summary, nil
}

// activeOccupancyQuery selects active occupancies located in the given
// buildings, through either a flat unit or a PG bed.
func (s *dashboardService) activeOccupancyQuery(buildingIDs []string) *gorm.DB {
	return s.db.Model(&models.Occupancy{}).
		Joins("LEFT JOIN units flat_units ON flat_units.id = occupancies.unit_id").
		Joins("LEFT JOIN beds ON beds.id = occupancies.bed_id").
		Joins("LEFT JOIN pg_rooms ON pg_rooms.id = beds.room_id").
		Joins("LEFT JOIN units pg_units ON pg_units.id = pg_rooms.unit_id").
		Where("occupancies.is_active = ?", true).
		Where("flat_units.building_id IN ? OR pg_units.building_id IN ?", buildingIDs, buildingIDs)
}

// monthRentQuery selects one month's rent rows for the given buildings.
func (s *dashboardService) monthRentQuery(buildingIDs []string, month time.Time) *gorm.DB {
	return s.db.Model(&models.Rent{}).
		Joins("JOIN occupancies ON occupancies.id = rents.occupancy_id").
		Joins("LEFT JOIN units flat_units ON flat_units.id = occupancies.unit_id").
		Joins("LEFT JOIN beds ON beds.id = occupancies.bed_id").
		Joins("LEFT JOIN pg_rooms ON pg_rooms.id = beds.room_id").
		Joins("LEFT JOIN units pg_units ON pg_units.id = pg_rooms.unit_id").
		Where("rents.month = ?", month).
		Where("flat_units.building_id IN ? OR pg_units.building_id IN ?", buildingIDs, buildingIDs)
}

// Detailed returns a per-building breakdown for the current month.
func (s *dashboardService) Detailed(actor Actor) (*DetailedMetrics, error) {
	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	metrics := &DetailedMetrics{
		Buildings:    []BuildingMetrics{},
		UserRole:     string(actor.Role),
		CurrentMonth: now.Format("2006-01"),
	}
	if len(buildingIDs) == 0 {
		return metrics, nil
	}

	var buildings []models.Building
	if err := s.db.Where("id IN ?", buildingIDs).Order("name").Find(&buildings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	month := models.MonthStart(now)
	for _, building := range buildings {
		row := BuildingMetrics{
			BuildingID:   building.ID,
			BuildingName: building.Name,
		}

		var counts struct {
			Total    int64
			Occupied int64
		}
		if err := s.db.Model(&models.Unit{}).
			Select("COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS occupied", models.StatusOccupied).
			Where("building_id = ?", building.ID).
			Scan(&counts).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		row.TotalUnits = int(counts.Total)
		row.OccupiedUnits = int(counts.Occupied)
		row.VacantUnits = int(counts.Total - counts.Occupied)

		var rentTotals struct {
			Expected int64
			Paid     int64
		}
		if err := s.monthRentQuery([]string{building.ID}, month).
			Select("COALESCE(SUM(rents.amount), 0) AS expected, COALESCE(SUM(rents.paid_amount), 0) AS paid").
			Scan(&rentTotals).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		row.ExpectedRent = rentTotals.Expected
		row.CollectedRent = rentTotals.Paid
		if rentTotals.Expected > 0 {
			row.CollectionRate = round2(float64(rentTotals.Paid) / float64(rentTotals.Expected) * 100)
		}

		var openIssues int64
		if err := s.db.Model(&models.Issue{}).
			Joins("JOIN units ON units.id = issues.unit_id").
			Where("units.building_id = ? AND issues.status <> ?", building.ID, models.IssueResolved).
			Count(&openIssues).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		row.OpenIssues = int(openIssues)

		metrics.Buildings = append(metrics.Buildings, row)
		metrics.Summary.TotalExpectedRent += row.ExpectedRent
		metrics.Summary.TotalCollectedRent += row.CollectedRent
	}

	metrics.Summary.TotalBuildings = len(buildings)
	if metrics.Summary.TotalExpectedRent > 0 {
		metrics.Summary.OverallCollectionRate = round2(
			float64(metrics.Summary.TotalCollectedRent) / float64(metrics.Summary.TotalExpectedRent) * 100)
	}
	return metrics, nil
}

const activityFeedLimit = 10

// Activity returns the latest issues, move-ins, and payments across the
// actor's accessible buildings.
func (s *dashboardService) Activity(actor Actor) (*RecentActivity, error) {
	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}

	activity := &RecentActivity{
		RecentIssues:   []ActivityItem{},
		RecentTenants:  []ActivityItem{},
		RecentPayments: []ActivityItem{},
	}
	if len(buildingIDs) == 0 {
		return activity, nil
	}

	var issues []models.Issue
	if err := s.db.Preload("Unit.Building").
		Joins("JOIN units ON units.id = issues.unit_id").
		Where("units.building_id IN ?", buildingIDs).
		Order("issues.raised_date DESC").
		Limit(activityFeedLimit).
		Find(&issues).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, issue := range issues {
		item := ActivityItem{
			ID:    issue.ID,
			Kind:  "issue",
			Title: issue.Title,
			When:  issue.RaisedDate,
		}
		if issue.Unit != nil {
			item.Unit = issue.Unit.UnitNumber
			if issue.Unit.Building != nil {
				item.Building = issue.Unit.Building.Name
			}
		}
		activity.RecentIssues = append(activity.RecentIssues, item)
	}

	var occupancies []models.Occupancy
	if err := s.activeOccupancyQuery(buildingIDs).
		Preload("Tenant").Preload("Unit.Building").
		Order("occupancies.start_date DESC").
		Limit(activityFeedLimit).
		Find(&occupancies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, occupancy := range occupancies {
		item := ActivityItem{
			ID:   occupancy.ID,
			Kind: "move_in",
			When: occupancy.StartDate,
		}
		if occupancy.Tenant != nil {
			item.Title = occupancy.Tenant.Name
		}
		if occupancy.Unit != nil {
			item.Unit = occupancy.Unit.UnitNumber
			if occupancy.Unit.Building != nil {
				item.Building = occupancy.Unit.Building.Name
			}
		}
		activity.RecentTenants = append(activity.RecentTenants, item)
	}

	var payments []models.Rent
	if err := s.db.Model(&models.Rent{}).
		Preload("Occupancy.Tenant").
		Joins("JOIN occupancies ON occupancies.id = rents.occupancy_id").
		Joins("LEFT JOIN units flat_units ON flat_units.id = occupancies.unit_id").
		Joins("LEFT JOIN beds ON beds.id = occupancies.bed_id").
		Joins("LEFT JOIN pg_rooms ON pg_rooms.id = beds.room_id").
		Joins("LEFT JOIN units pg_units ON pg_units.id = pg_rooms.unit_id").
		Where("flat_units.building_id IN ? OR pg_units.building_id IN ?", buildingIDs, buildingIDs).
		Where("rents.paid_amount > 0").
		Order("rents.updated_at DESC").
		Limit(activityFeedLimit).
		Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, payment := range payments {
		item := ActivityItem{
			ID:     payment.ID,
			Kind:   "payment",
			Amount: payment.PaidAmount,
			When:   payment.UpdatedAt,
		}
		if payment.Occupancy != nil && payment.Occupancy.Tenant != nil {
			item.Title = payment.Occupancy.Tenant.Name
		}
		activity.RecentPayments = append(activity.RecentPayments, item)
	}

	return activity, nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
