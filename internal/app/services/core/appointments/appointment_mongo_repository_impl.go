package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	appointmentModel.ID = ""
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Appointment, int64, error) {
	return r.findWithFilter(ctx, r.buildFilter(query, bson.M{}), query)
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Appointment, int64, error) {
	return r.findWithFilter(ctx, r.buildFilter(query, bson.M{"patientId": patientID}), query)
}

func (r *AppointmentMongoRepository) FindByPsychologistID(ctx context.Context, psychologistID int64, query *requests.QueryParams) ([]models.Appointment, int64, error) {
	return r.findWithFilter(ctx, r.buildFilter(query, bson.M{"psychologistId": psychologistID}), query)
}

func (r *AppointmentMongoRepository) FindBetween(ctx context.Context, from, to time.Time, psychologistID int64, patientID string) ([]models.Appointment, error) {
	filter := bson.M{
		"appointmentDate": bson.M{"$gte": from, "$lt": to},
	}
	if psychologistID > 0 {
		filter["psychologistId"] = psychologistID
	}
	if patientID != "" {
		filter["patientId"] = patientID
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

// FindConflicting returns any non-cancelled appointment whose interval
// overlaps [start, end) for the given psychologist.
func (r *AppointmentMongoRepository) FindConflicting(ctx context.Context, psychologistID int64, start, end time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"psychologistId": psychologistID,
		"status": bson.M{"$nin": bson.A{
			constvars.AppointmentStatusCancelled,
			constvars.AppointmentStatusNoShow,
		}},
		"appointmentDate": bson.M{"$lt": end},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	// Duration lives on the document, so the end-side of the overlap test is
	// done here instead of in the query.
	var candidates []models.Appointment
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	for i := range candidates {
		apptEnd := candidates[i].AppointmentDate.Add(time.Duration(candidates[i].DurationMinutes) * time.Minute)
		if apptEnd.After(start) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

func (r *AppointmentMongoRepository) FindDueForReminder(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status":          constvars.AppointmentStatusUpcoming,
		"appointmentDate": bson.M{"$gte": windowStart, "$lt": windowEnd},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) CountCompletedWithRebateInYear(ctx context.Context, patientID string, year int) (int64, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	filter := bson.M{
		"patientId":       patientID,
		"status":          constvars.AppointmentStatusCompleted,
		"appointmentDate": bson.M{"$gte": yearStart, "$lt": yearEnd},
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) CountByStatusBetween(ctx context.Context, status string, from, to time.Time) (int64, error) {
	filter := bson.M{
		"appointmentDate": bson.M{"$gte": from, "$lt": to},
	}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	appointmentModel.SetUpdatedNow()
	update := bson.M{"$set": bson.M{
		"appointmentDate":  appointmentModel.AppointmentDate,
		"durationMinutes":  appointmentModel.DurationMinutes,
		"sessionType":      appointmentModel.SessionType,
		"status":           appointmentModel.Status,
		"notes":            appointmentModel.Notes,
		"cancelReason":     appointmentModel.CancelReason,
		"sessionStartTime": appointmentModel.SessionStartTime,
		"sessionEndTime":   appointmentModel.SessionEndTime,
		"completedAt":      appointmentModel.CompletedAt,
		"updatedAt":        appointmentModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) buildFilter(query *requests.QueryParams, filter bson.M) bson.M {
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.SessionType != "" {
		filter["sessionType"] = query.SessionType
	}
	if query.PsychologistID > 0 {
		filter["psychologistId"] = query.PsychologistID
	}
	if query.PatientID != "" {
		filter["patientId"] = query.PatientID
	}
	if query.ServiceID > 0 {
		filter["serviceId"] = query.ServiceID
	}

	dateFilter := bson.M{}
	if query.FromDate != "" {
		if from, err := time.Parse("2006-01-02", query.FromDate); err == nil {
			dateFilter["$gte"] = from
		}
	}
	if query.ToDate != "" {
		if to, err := time.Parse("2006-01-02", query.ToDate); err == nil {
			dateFilter["$lt"] = to.AddDate(0, 0, 1)
		}
	}
	if len(dateFilter) > 0 {
		filter["appointmentDate"] = dateFilter
	}
	return filter
}

func (r *AppointmentMongoRepository) findWithFilter(ctx context.Context, filter bson.M, query *requests.QueryParams) ([]models.Appointment, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "appointmentDate", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, total, nil
}
