package postgres

import (
	"context"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the domain.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// RegisterDevice stores a device token for an owner. A token already
// registered (possibly by another account on a shared device) is re-assigned
// via upsert instead of failing.
func (repo *deviceRepository) RegisterDevice(ctx context.Context, device *entity.OwnerDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_id", "platform", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDevicesByOwner retrieves all registered devices for an owner.
func (repo *deviceRepository) FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.OwnerDevice, error) {
	var deviceModels []*model.OwnerDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	devices := make([]*entity.OwnerDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeleteDevicesByToken removes registrations whose token the push provider
// reported as invalid or unregistered.
func (repo *deviceRepository) DeleteDevicesByToken(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.OwnerDeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete devices by token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM OwnerDeviceModel to a domain OwnerDevice entity.
func toDeviceDomain(data *model.OwnerDeviceModel) *entity.OwnerDevice {
	if data == nil {
		return nil
	}

	return &entity.OwnerDevice{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain OwnerDevice entity to a GORM OwnerDeviceModel.
func fromDeviceDomain(data *entity.OwnerDevice) *model.OwnerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.OwnerDeviceModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
