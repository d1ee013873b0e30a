package repositories

import (
	"errors"

	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id string) (*models.Message, error)
	ListBetween(userID, partnerID string) ([]models.Message, error)
	LatestBetween(userID, partnerID string) (*models.Message, error)
	DistinctPartnerIDs(userID string) ([]string, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("Sender").Preload("Receiver").First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListBetween returns the full pairwise history, oldest first.
func (r *MessageRepositoryImpl) ListBetween(userID, partnerID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Preload("Sender").Preload("Receiver").
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// LatestBetween returns the single most recent message of the pair, or nil
// when the pair has no history.
func (r *MessageRepositoryImpl) LatestBetween(userID, partnerID string) (*models.Message, error) {
	var message models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Preload("Sender").Preload("Receiver").
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// DistinctPartnerIDs returns the union of distinct receivers of the user's
// sent messages and distinct senders of their received ones.
func (r *MessageRepositoryImpl) DistinctPartnerIDs(userID string) ([]string, error) {
	var sentTo []string
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ?", userID).
		Distinct().Pluck("receiver_id", &sentTo).Error
	if err != nil {
		return nil, err
	}

	var receivedFrom []string
	err = r.db.Model(&models.Message{}).
		Where("receiver_id = ?", userID).
		Distinct().Pluck("sender_id", &receivedFrom).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(sentTo)+len(receivedFrom))
	var partnerIDs []string
	for _, id := range append(sentTo, receivedFrom...) {
		if !seen[id] {
			seen[id] = true
			partnerIDs = append(partnerIDs, id)
		}
	}
	return partnerIDs, nil
}
