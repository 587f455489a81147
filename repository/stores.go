package repository

import (
	"context"
	"fmt"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEnquiryStore enquiry persistence over the enquiries collection
type MongoEnquiryStore struct{}

// NewEnquiryStore creates a MongoEnquiryStore.
func NewEnquiryStore() *MongoEnquiryStore {
	return &MongoEnquiryStore{}
}

// FindByID returns the enquiry or (nil, nil) when no row matches.
func (s *MongoEnquiryStore) FindByID(ctx context.Context, id string) (*models.Enquiry, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid enquiry id: %w", err)
	}

	var enquiry models.Enquiry
	err = Collection(EnquiriesCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&enquiry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// Insert stores a new enquiry row and returns it with its assigned id.
func (s *MongoEnquiryStore) Insert(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
	result, err := Collection(EnquiriesCollection).InsertOne(ctx, enquiry)
	if err != nil {
		return nil, err
	}
	if objID, ok := result.InsertedID.(primitive.ObjectID); ok {
		enquiry.ID = objID
	}
	utils.LogDbOperation("insert", EnquiriesCollection, nil, enquiry.ID.Hex())
	return enquiry, nil
}

// Update applies a $set patch and returns the updated row, or (nil, nil)
// when no row matches.
func (s *MongoEnquiryStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Enquiry, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid enquiry id: %w", err)
	}

	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Enquiry
	err = Collection(EnquiriesCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List returns enquiries ordered by date descending, optionally filtered by
// assignee. YYYY-MM-DD strings sort correctly lexicographically.
func (s *MongoEnquiryStore) List(ctx context.Context, assignedTo models.Assignee) ([]models.Enquiry, error) {
	filter := bson.M{}
	if assignedTo != "" {
		filter["assignedTo"] = assignedTo
	}

	findOptions := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := Collection(EnquiriesCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enquiries []models.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

// MongoCustomerStore customer persistence over the customers collection
type MongoCustomerStore struct{}

// NewCustomerStore creates a MongoCustomerStore.
func NewCustomerStore() *MongoCustomerStore {
	return &MongoCustomerStore{}
}

// FindByNumber looks a customer up by contact number. A miss returns
// (nil, nil).
func (s *MongoCustomerStore) FindByNumber(ctx context.Context, number string) (*models.Customer, error) {
	var customer models.Customer
	err := Collection(CustomersCollection).FindOne(ctx, bson.M{"contactNumber": number}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByID returns the customer or (nil, nil) when no row matches.
func (s *MongoCustomerStore) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	var customer models.Customer
	err = Collection(CustomersCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Insert stores a new customer row and returns it with its assigned id.
func (s *MongoCustomerStore) Insert(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	result, err := Collection(CustomersCollection).InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}
	if objID, ok := result.InsertedID.(primitive.ObjectID); ok {
		customer.ID = objID
	}
	utils.LogDbOperation("insert", CustomersCollection, nil, customer.ID.Hex())
	return customer, nil
}

// SetMeetingPerson writes the customer's meeting contact.
func (s *MongoCustomerStore) SetMeetingPerson(ctx context.Context, id string, person string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}

	_, err = Collection(CustomersCollection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"meetingPerson": person}},
	)
	return err
}

// Update applies a $set patch to a customer and returns the updated row.
func (s *MongoCustomerStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Customer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Customer
	err = Collection(CustomersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List returns customers ordered by name.
func (s *MongoCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	findOptions := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := Collection(CustomersCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// MongoTaskStore task persistence over the tasks collection
type MongoTaskStore struct{}

// NewTaskStore creates a MongoTaskStore.
func NewTaskStore() *MongoTaskStore {
	return &MongoTaskStore{}
}

// FindByID returns the task or (nil, nil) when no row matches.
func (s *MongoTaskStore) FindByID(ctx context.Context, id string) (*models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid task id: %w", err)
	}

	var task models.Task
	err = Collection(TasksCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Insert stores a new task row and returns it with its assigned id.
func (s *MongoTaskStore) Insert(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := Collection(TasksCollection).InsertOne(ctx, task)
	if err != nil {
		return nil, err
	}
	if objID, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = objID
	}
	utils.LogDbOperation("insert", TasksCollection, nil, task.ID.Hex())
	return task, nil
}

// Update applies a $set patch and returns the updated row, or (nil, nil)
// when no row matches.
func (s *MongoTaskStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid task id: %w", err)
	}

	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Task
	err = Collection(TasksCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task row.
func (s *MongoTaskStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid task id: %w", err)
	}

	result, err := Collection(TasksCollection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns tasks ordered by creation time descending, optionally
// filtered by assignee.
func (s *MongoTaskStore) List(ctx context.Context, assignedTo models.Assignee) ([]models.Task, error) {
	filter := bson.M{}
	if assignedTo != "" {
		filter["assignedTo"] = assignedTo
	}

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := Collection(TasksCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
