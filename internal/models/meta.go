package models

import "time"

// Meta is the server-assigned part of every persisted record.
type Meta struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Metadata gives generic code access to the embedded Meta.
func (m *Meta) Metadata() *Meta { return m }
