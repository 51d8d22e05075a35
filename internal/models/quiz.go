package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeMultipleChoice = "multiple-choice"
	TypeShortAnswer    = "short-answer"
	TypeTrueFalse      = "true-false"
)

// Question lives only inside its parent Quiz's questions array. Its id is
// assigned when it is appended and stays stable across edits.
type Question struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Text          string             `bson:"text" json:"text" validate:"required"`
	Type          string             `bson:"type" json:"type" validate:"omitempty,oneof=multiple-choice short-answer true-false"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer string             `bson:"correctAnswer" json:"correctAnswer"`
	Created_at    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Quiz is stored as a single document with its questions embedded in place.
type Quiz struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Questions   []Question         `bson:"questions" json:"questions"`
	Created_at  time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
