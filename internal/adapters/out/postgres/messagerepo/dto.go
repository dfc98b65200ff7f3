// Package messagerepo persists the donation chat.
package messagerepo

import (
	"time"

	"reco/internal/core/domain/model/message"

	"github.com/google/uuid"
)

// MessageDTO is a row of the messages table.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_message_thread"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_message_thread"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_message_thread"`
	Text        string    `gorm:"type:text;not null"`
	ImageRef    string    `gorm:"type:varchar(500)"`
	Read        bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		DonationID:  m.DonationID().Bytes(),
		SenderID:    m.SenderID().Bytes(),
		RecipientID: m.RecipientID().Bytes(),
		Text:        m.Text(),
		ImageRef:    m.ImageRef(),
		Read:        m.IsRead(),
		CreatedAt:   m.CreatedAt(),
	}
}
