package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quotient/contexts/marketplace/notification-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/notification-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateNotification(ctx context.Context, notification entities.Notification) error {
	row := notificationModelFromEntity(notification)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidDispatchInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetNotification(ctx context.Context, notificationID string) (entities.Notification, error) {
	var row notificationModel
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", strings.TrimSpace(notificationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Notification{}, domainerrors.ErrNotificationNotFound
		}
		return entities.Notification{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateNotification(ctx context.Context, notification entities.Notification) error {
	row := notificationModelFromEntity(notification)
	result := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ?", row.NotificationID).
		Updates(map[string]any{
			"read":       row.Read,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	var rows []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type notificationModel struct {
	NotificationID string    `gorm:"column:notification_id;primaryKey"`
	UserID         string    `gorm:"column:user_id;index"`
	Type           string    `gorm:"column:type"`
	Message        string    `gorm:"column:message"`
	FromUserID     string    `gorm:"column:from_user_id"`
	Read           bool      `gorm:"column:read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (notificationModel) TableName() string {
	return "notifications"
}

func notificationModelFromEntity(item entities.Notification) notificationModel {
	return notificationModel{
		NotificationID: strings.TrimSpace(item.NotificationID),
		UserID:         strings.TrimSpace(item.UserID),
		Type:           strings.TrimSpace(item.Type),
		Message:        item.Message,
		FromUserID:     strings.TrimSpace(item.FromUserID),
		Read:           item.Read,
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func (m notificationModel) toEntity() entities.Notification {
	return entities.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           m.Type,
		Message:        m.Message,
		FromUserID:     m.FromUserID,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
