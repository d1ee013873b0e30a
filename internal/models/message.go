package models

// Message records are immutable once created.
type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`

	// Relations
	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
