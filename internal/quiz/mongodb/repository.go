// Package mongodb stores each quiz as one document with its questions array
// embedded in place. Question mutations load the document, mutate the
// aggregate in memory and write the whole document back; two concurrent edits
// of the same quiz can therefore lose one update. The collection serializes
// single-document writes, but there is no optimistic concurrency control
// across the read/write boundary.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quizbuilder/internal/models"
	"quizbuilder/internal/quiz"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) *Repository {
	return &Repository{collection: collection}
}

func (r *Repository) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	quizzes := []models.Quiz{}
	for cur.Next(ctx) {
		var item models.Quiz
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, item)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return quizzes, nil
}

func (r *Repository) GetQuiz(ctx context.Context, id string) (models.Quiz, error) {
	quizID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Quiz{}, quiz.ErrQuizNotFound
	}
	return r.loadQuiz(ctx, quizID)
}

func (r *Repository) CreateQuiz(ctx context.Context, title, description string) (models.Quiz, error) {
	created, err := quiz.NewQuiz(title, description, time.Now().UTC())
	if err != nil {
		return models.Quiz{}, err
	}

	if _, err := r.collection.InsertOne(ctx, created); err != nil {
		return models.Quiz{}, err
	}

	return created, nil
}

func (r *Repository) UpdateQuiz(ctx context.Context, id string, patch quiz.QuizPatch) (models.Quiz, error) {
	quizID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Quiz{}, quiz.ErrQuizNotFound
	}

	loaded, err := r.loadQuiz(ctx, quizID)
	if err != nil {
		return models.Quiz{}, err
	}

	quiz.ApplyQuizPatch(&loaded, patch, time.Now().UTC())

	return r.saveQuiz(ctx, loaded)
}

func (r *Repository) DeleteQuiz(ctx context.Context, id string) error {
	quizID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return quiz.ErrQuizNotFound
	}

	// Existence check first so the second of two near-simultaneous deletes
	// reports not found instead of silently succeeding.
	if _, err := r.loadQuiz(ctx, quizID); err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": quizID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return quiz.ErrQuizNotFound
	}

	return nil
}

func (r *Repository) AddQuestion(ctx context.Context, quizID string, data quiz.QuestionData) (models.Quiz, error) {
	return r.mutateQuiz(ctx, quizID, func(loaded *models.Quiz, now time.Time) error {
		_, err := quiz.AppendQuestion(loaded, data, now)
		return err
	})
}

func (r *Repository) UpdateQuestion(ctx context.Context, quizID, questionID string, data quiz.QuestionData) (models.Quiz, error) {
	qid, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return models.Quiz{}, quiz.ErrQuestionNotFound
	}
	return r.mutateQuiz(ctx, quizID, func(loaded *models.Quiz, now time.Time) error {
		return quiz.ReplaceQuestion(loaded, qid, data, now)
	})
}

func (r *Repository) RemoveQuestion(ctx context.Context, quizID, questionID string) (models.Quiz, error) {
	qid, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return models.Quiz{}, quiz.ErrQuestionNotFound
	}
	return r.mutateQuiz(ctx, quizID, func(loaded *models.Quiz, now time.Time) error {
		return quiz.RemoveQuestion(loaded, qid, now)
	})
}

// mutateQuiz is the shared read-modify-write path for question operations:
// load the aggregate, apply the mutation, replace the whole document.
func (r *Repository) mutateQuiz(ctx context.Context, quizID string, mutate func(*models.Quiz, time.Time) error) (models.Quiz, error) {
	id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return models.Quiz{}, quiz.ErrQuizNotFound
	}

	loaded, err := r.loadQuiz(ctx, id)
	if err != nil {
		return models.Quiz{}, err
	}

	if err := mutate(&loaded, time.Now().UTC()); err != nil {
		return models.Quiz{}, err
	}

	return r.saveQuiz(ctx, loaded)
}

func (r *Repository) loadQuiz(ctx context.Context, quizID primitive.ObjectID) (models.Quiz, error) {
	var loaded models.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": quizID}).Decode(&loaded)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Quiz{}, quiz.ErrQuizNotFound
	}
	if err != nil {
		return models.Quiz{}, err
	}
	return loaded, nil
}

func (r *Repository) saveQuiz(ctx context.Context, loaded models.Quiz) (models.Quiz, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": loaded.ID}, loaded)
	if err != nil {
		return models.Quiz{}, err
	}
	if result.MatchedCount == 0 {
		return models.Quiz{}, quiz.ErrQuizNotFound
	}
	return loaded, nil
}
