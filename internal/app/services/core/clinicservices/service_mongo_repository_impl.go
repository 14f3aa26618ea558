package clinicservices

import (
	"context"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Database) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionServices),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
	}
}

func (r *ServiceMongoRepository) CreateService(ctx context.Context, serviceModel *models.Service) (string, error) {
	serviceModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, serviceModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "serviceId", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return services, nil
}

func (r *ServiceMongoRepository) FindByServiceID(ctx context.Context, serviceID int64) (*models.Service, error) {
	var service models.Service
	err := r.Collection.FindOne(ctx, bson.M{"serviceId": serviceID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *ServiceMongoRepository) NextServiceID(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": constvars.MongoCounterServiceID}
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

func (r *ServiceMongoRepository) UpdateService(ctx context.Context, serviceModel *models.Service) error {
	serviceModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"name":            serviceModel.Name,
		"description":     serviceModel.Description,
		"durationMinutes": serviceModel.DurationMinutes,
		"fee":             serviceModel.Fee,
		"medicareRebate":  serviceModel.MedicareRebate,
		"active":          serviceModel.Active,
		"updatedAt":       serviceModel.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"serviceId": serviceModel.ServiceID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
