package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

const (
	tasksCollection = "volunteer_tasks"
	usersCollection = "users"
)

// MongoTaskRepository stores tasks and users as documents.
type MongoTaskRepository struct {
	tasks *mongo.Collection
	users *mongo.Collection
}

func NewMongoTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{
		tasks: db.Collection(tasksCollection),
		users: db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the indexes list and user lookups rely on.
func (r *MongoTaskRepository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}); err != nil {
		return err
	}

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoTaskRepository) CreateTask(ctx context.Context, task *model.VolunteerTask) error {
	_, err := r.tasks.InsertOne(ctx, task)
	return err
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*model.VolunteerTask, error) {
	var task model.VolunteerTask
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *MongoTaskRepository) List(ctx context.Context) ([]model.VolunteerTask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.tasks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.VolunteerTask, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *MongoTaskRepository) ListPopulated(ctx context.Context) ([]model.PopulatedTask, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := r.FindUsersByIDs(ctx, model.ReferencedUserIDs(tasks))
	if err != nil {
		return nil, err
	}

	return model.Populate(tasks, users), nil
}

// Update replaces the mutable fields only if the stored version still equals
// task.Version.
func (r *MongoTaskRepository) Update(ctx context.Context, task *model.VolunteerTask) error {
	filter := bson.M{"_id": task.ID, "version": task.Version}
	update := bson.M{
		"$set": bson.M{
			"title":             task.Title,
			"description":       task.Description,
			"location":          task.Location,
			"priority":          task.Priority,
			"requiredSkills":    task.RequiredSkills,
			"estimatedDuration": task.EstimatedDuration,
			"maxVolunteers":     task.MaxVolunteers,
			"volunteers":        task.Volunteers,
			"status":            task.Status,
			"completedAt":       task.CompletedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.tasks.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *MongoTaskRepository) CreateUser(ctx context.Context, user *model.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrUserExists
	}
	return err
}

func (r *MongoTaskRepository) FindUsersByIDs(ctx context.Context, ids []string) (map[string]model.User, error) {
	users := make(map[string]model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.User
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}
