package notes

import (
	"context"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewNoteMongoRepository(db *mongo.Database) contracts.NoteRepository {
	return &NoteMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionProgressNotes),
	}
}

func (r *NoteMongoRepository) CreateNote(ctx context.Context, noteModel *models.ProgressNote) (string, error) {
	noteModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, noteModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NoteMongoRepository) FindByID(ctx context.Context, noteID string) (*models.ProgressNote, error) {
	objectID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var note models.ProgressNote
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &note, nil
}

func (r *NoteMongoRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.ProgressNote, int64, error) {
	filter := bson.M{"patientId": patientID}
	if query.PsychologistID > 0 {
		filter["psychologistId"] = query.PsychologistID
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notes []models.ProgressNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return notes, total, nil
}

func (r *NoteMongoRepository) UpdateNote(ctx context.Context, noteModel *models.ProgressNote) error {
	objectID, err := primitive.ObjectIDFromHex(noteModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	noteModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"subjective":     noteModel.Subjective,
		"objective":      noteModel.Objective,
		"assessment":     noteModel.Assessment,
		"plan":           noteModel.Plan,
		"progressRating": noteModel.ProgressRating,
		"finalized":      noteModel.Finalized,
		"updatedAt":      noteModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
