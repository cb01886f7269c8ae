package models

// Student is the persisted student record. Course holds a course reference
// as given by the client; it is not checked against the courses collection.
type Student struct {
	Meta    `bson:",inline"`
	Title   string `bson:"title" json:"title"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Course  string `bson:"course" json:"course"`
}

// StudentSortFields lists the fields a student listing may be ordered by.
var StudentSortFields = []string{"id", "title", "name", "address", "city", "course", "createdAt", "updatedAt"}
