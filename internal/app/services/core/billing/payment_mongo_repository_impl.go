package billing

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

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Database) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, paymentModel *models.Payment) (string, error) {
	paymentModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, paymentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PaymentMongoRepository) FindByInvoiceID(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "paidAt", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"invoiceId": invoiceID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return payments, nil
}
