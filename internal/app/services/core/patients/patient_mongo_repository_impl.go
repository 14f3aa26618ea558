package patients

import (
	"context"
	"time"

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	patientModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, patientModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Patient, int64, error) {
	filter := bson.M{}
	if query.Search != "" {
		filter["$or"] = []bson.M{
			{"firstName": bson.M{"$regex": query.Search, "$options": "i"}},
			{"lastName": bson.M{"$regex": query.Search, "$options": "i"}},
			{"email": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	if query.PsychologistID > 0 {
		filter["psychologistId"] = query.PsychologistID
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	skip := int64((query.Page - 1) * query.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(query.PageSize)).
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return patients, total, nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) CountCreatedBetween(ctx context.Context, from, to string) (int64, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0, exceptions.ErrCannotParseDate(err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0, exceptions.ErrCannotParseDate(err)
	}

	filter := bson.M{"createdAt": bson.M{
		"$gte": fromDate,
		"$lt":  toDate.AddDate(0, 0, 1),
	}}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return total, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patientModel *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patientModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	patientModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"userId":         patientModel.UserID,
		"firstName":      patientModel.FirstName,
		"lastName":       patientModel.LastName,
		"dateOfBirth":    patientModel.DateOfBirth,
		"phoneNumber":    patientModel.PhoneNumber,
		"email":          patientModel.Email,
		"medicareNumber": patientModel.MedicareNumber,
		"psychologistId": patientModel.PsychologistID,
		"updatedAt":      patientModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
