package psychologists

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

type PsychologistMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewPsychologistMongoRepository(db *mongo.Database) contracts.PsychologistRepository {
	return &PsychologistMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPsychologists),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (r *PsychologistMongoRepository) CreatePsychologist(ctx context.Context, psychologistModel *models.Psychologist) (string, error) {
	psychologistModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, psychologistModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PsychologistMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Psychologist, int64, error) {
	filter := bson.M{}
	if query.Search != "" {
		filter["$or"] = []bson.M{
			{"firstName": bson.M{"$regex": query.Search, "$options": "i"}},
			{"lastName": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	skip := int64((query.Page - 1) * query.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(query.PageSize)).
		SetSort(bson.D{{Key: "psychologistId", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var psychologists []models.Psychologist
	if err := cursor.All(ctx, &psychologists); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return psychologists, total, nil
}

func (r *PsychologistMongoRepository) FindByPsychologistID(ctx context.Context, psychologistID int64) (*models.Psychologist, error) {
	var psychologist models.Psychologist
	err := r.Collection.FindOne(ctx, bson.M{"psychologistId": psychologistID}).Decode(&psychologist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &psychologist, nil
}

func (r *PsychologistMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Psychologist, error) {
	var psychologist models.Psychologist
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&psychologist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &psychologist, nil
}

// NextPsychologistID atomically increments the shared counter document so
// public psychologist ids stay small sequential integers.
func (r *PsychologistMongoRepository) NextPsychologistID(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": constvars.MongoCounterPsychologistID}
	update := bson.M{"$inc": bson.M{"sequence": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Sequence int64 `bson:"sequence"`
	}
	err := r.Counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return counter.Sequence, nil
}

func (r *PsychologistMongoRepository) UpdatePsychologist(ctx context.Context, psychologistModel *models.Psychologist) error {
	psychologistModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"userId":               psychologistModel.UserID,
		"firstName":            psychologistModel.FirstName,
		"lastName":             psychologistModel.LastName,
		"registrationNumber":   psychologistModel.RegistrationNumber,
		"acceptingNewPatients": psychologistModel.AcceptingNewPatients,
		"acceptanceMessage":    psychologistModel.AcceptanceMessage,
		"workDays":             psychologistModel.WorkDays,
		"slotDurationMinutes":  psychologistModel.SlotDurationMinutes,
		"updatedAt":            psychologistModel.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"psychologistId": psychologistModel.PsychologistID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
