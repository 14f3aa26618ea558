package billing

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

type InvoiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewInvoiceMongoRepository(db *mongo.Database) contracts.InvoiceRepository {
	return &InvoiceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionInvoices),
	}
}

func (r *InvoiceMongoRepository) CreateInvoice(ctx context.Context, invoiceModel *models.Invoice) (string, error) {
	invoiceModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, invoiceModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *InvoiceMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Invoice, int64, error) {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.PatientID != "" {
		filter["patientId"] = query.PatientID
	}
	if query.PsychologistID > 0 {
		filter["psychologistId"] = query.PsychologistID
	}
	return r.findWithFilter(ctx, filter, query)
}

func (r *InvoiceMongoRepository) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var invoice models.Invoice
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &invoice, nil
}

func (r *InvoiceMongoRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Invoice, int64, error) {
	filter := bson.M{"patientId": patientID}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	return r.findWithFilter(ctx, filter, query)
}

func (r *InvoiceMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &invoice, nil
}

func (r *InvoiceMongoRepository) SumAmountsBetween(ctx context.Context, from, to time.Time) (float64, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"invoiced":  bson.M{"$sum": "$amount"},
			"collected": bson.M{"$sum": "$amountPaid"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var totals []struct {
		Invoiced  float64 `bson:"invoiced"`
		Collected float64 `bson:"collected"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return 0, 0, exceptions.ErrMongoDBAggregate(err)
	}
	if len(totals) == 0 {
		return 0, 0, nil
	}
	return totals[0].Invoiced, totals[0].Collected, nil
}

func (r *InvoiceMongoRepository) UpdateInvoice(ctx context.Context, invoiceModel *models.Invoice) error {
	objectID, err := primitive.ObjectIDFromHex(invoiceModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	invoiceModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"amountPaid":     invoiceModel.AmountPaid,
		"status":         invoiceModel.Status,
		"documentObject": invoiceModel.DocumentObject,
		"updatedAt":      invoiceModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *InvoiceMongoRepository) findWithFilter(ctx context.Context, filter bson.M, query *requests.QueryParams) ([]models.Invoice, int64, error) {
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

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return invoices, total, nil
}
