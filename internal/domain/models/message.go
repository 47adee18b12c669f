// internal/domain/models/message.go
package models

// Contact message statuses. New messages start as unread.
const (
	MessageUnread    = "unread"
	MessageRead      = "read"
	MessageResponded = "responded"
)

// MessageStatuses is the closed set of valid status values, in
// lifecycle order.
var MessageStatuses = []string{MessageUnread, MessageRead, MessageResponded}

// ContactMessage is a message submitted through the contact form.
// Listing orders newest first.
type ContactMessage struct {
	Meta `bson:",inline"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Subject string `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string `bson:"message" json:"message"`
	Status  string `bson:"status" json:"status"`
}
