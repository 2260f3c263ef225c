package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

type ScheduleService struct {
	schedulesRepo models.SchedulesRepo
	accountRepo   models.AccountRepo
}

func NewScheduleService(schedulesRepo models.SchedulesRepo, accountRepo models.AccountRepo) *ScheduleService {
	return &ScheduleService{schedulesRepo: schedulesRepo, accountRepo: accountRepo}
}

// CreateSchedule creates an admin-assigned calendar item. Supplier-bound
// items are only allowed when the supplier exists and is accepting work.
func (ss *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	if err := models.Validate.Struct(schedule); err != nil {
		return nil, fmt.Errorf("invalid schedule data: %v", err)
	}

	if schedule.RecipientType == models.RecipientSupplier {
		if strings.TrimSpace(schedule.SupplierID) == "" {
			return nil, fmt.Errorf("supplier ID is required for supplier schedules")
		}
		supplierID, err := primitive.ObjectIDFromHex(schedule.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("invalid supplier ID format")
		}
		supplier, err := ss.accountRepo.GetAccountByID(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		if !supplier.IsSupplier() {
			return nil, fmt.Errorf("account %s is not a supplier", schedule.SupplierID)
		}
		if !supplier.IsAvailable {
			return nil, fmt.Errorf("supplier %q is not accepting schedules", supplier.CompanyName)
		}
		schedule.CompanyName = supplier.CompanyName
		schedule.PersonName = supplier.FullName
		schedule.PersonEmail = supplier.Email
	}

	return ss.schedulesRepo.CreateSchedule(ctx, schedule)
}

func (ss *ScheduleService) GetSchedule(ctx context.Context, id primitive.ObjectID) (*models.Schedule, error) {
	return ss.schedulesRepo.GetScheduleByID(ctx, id)
}

func (ss *ScheduleService) ListSchedules(ctx context.Context, status string) ([]*models.Schedule, error) {
	if status == "" {
		return ss.schedulesRepo.ListSchedules(ctx)
	}
	switch models.ScheduleStatus(status) {
	case models.SchedulePending, models.ScheduleAccepted, models.ScheduleDeclined:
		return ss.schedulesRepo.ListSchedulesByStatus(ctx, models.ScheduleStatus(status))
	default:
		return nil, fmt.Errorf("unknown schedule status %q", status)
	}
}

// Respond records a supplier's accept or decline on their own pending item.
func (ss *ScheduleService) Respond(ctx context.Context, id primitive.ObjectID, supplierID string, accept bool) (*models.Schedule, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, fmt.Errorf("supplier ID is required")
	}
	status := models.ScheduleDeclined
	if accept {
		status = models.ScheduleAccepted
	}
	return ss.schedulesRepo.SetScheduleStatus(ctx, id, supplierID, status)
}
