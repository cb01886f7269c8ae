package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is the persisted course record. Fee is kept as a decimal so that the
// value written by the client is read back digit for digit.
type Course struct {
	Meta         `bson:",inline"`
	Name         string               `bson:"name" json:"name"`
	Fee          primitive.Decimal128 `bson:"fee" json:"fee"`
	LecturerID   string               `bson:"lecturerId" json:"lecturerId"`
	LecturerName string               `bson:"lecturerName" json:"lecturerName"`
}

// CourseSortFields lists the fields a course listing may be ordered by.
var CourseSortFields = []string{"id", "name", "fee", "lecturerId", "lecturerName", "createdAt", "updatedAt"}
