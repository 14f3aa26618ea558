package billing

import (
	"context"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicareClaimMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicareClaimMongoRepository(db *mongo.Database) contracts.MedicareClaimRepository {
	return &MedicareClaimMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicareClaims),
	}
}

func (r *MedicareClaimMongoRepository) CreateClaim(ctx context.Context, claimModel *models.MedicareClaim) (string, error) {
	claimModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, claimModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicareClaimMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicareClaim, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "serviceDate", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var claims []models.MedicareClaim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return claims, nil
}

// CountClaimsInYear counts claims against the calendar-year rebate cap.
// Rejected claims do not consume a rebated session.
func (r *MedicareClaimMongoRepository) CountClaimsInYear(ctx context.Context, patientID string, year int) (int64, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	filter := bson.M{
		"patientId":   patientID,
		"serviceDate": bson.M{"$gte": yearStart, "$lt": yearEnd},
		"status":      bson.M{"$ne": constvars.MedicareClaimStatusRejected},
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}
