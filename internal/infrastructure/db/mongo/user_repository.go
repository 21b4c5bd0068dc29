package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll  *mongo.Collection
	roles *mongo.Collection
}

// NewUserRepository builds a user repository. It also holds the roles
// collection so email lookups can resolve the account's role reference,
// which downstream authorization decisions depend on.
func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll:  db.Collection(usersCollection),
		roles: db.Collection(rolesCollection),
	}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	Firstname string             `bson:"firstname"`
	BirthDate time.Time          `bson:"birthDate"`
	City      string             `bson:"city"`
	Zipcode   string             `bson:"zipcode"`
	Role      primitive.ObjectID `bson:"role,omitempty"`
}

// EnsureIndexes creates the unique email index. The index is the
// authoritative uniqueness guard; the service-level pre-check is only a fast
// path and cannot win a race between concurrent signups.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:     user.Email,
		Password:  user.Password,
		Name:      user.Name,
		Firstname: user.Firstname,
		BirthDate: user.BirthDate.UTC(),
		City:      user.City,
		Zipcode:   user.Zipcode,
	}
	if user.RoleID != "" {
		roleID, err := primitive.ObjectIDFromHex(user.RoleID)
		if err != nil {
			return nil, fmt.Errorf("invalid role id %q: %w", user.RoleID, err)
		}
		doc.Role = roleID
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail returns the account with its role reference resolved into the
// full role record.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user := mu.toDomain()

	if !mu.Role.IsZero() {
		var mr mongoRole
		err := r.roles.FindOne(ctx, bson.M{"_id": mu.Role}).Decode(&mr)
		switch err {
		case nil:
			user.Role = mr.toDomain()
		case mongo.ErrNoDocuments:
			// role document was removed; leave the reference unresolved
		default:
			return nil, fmt.Errorf("resolve role: %w", err)
		}
	}
	return user, nil
}

// FindAll lists every account. Role references are left unresolved.
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *mu.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteByID removes the account. Unknown and malformed ids are treated as
// already deleted.
func (r *MongoUserRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (mu *mongoUser) toDomain() *domain.User {
	user := &domain.User{
		ID:        mu.ID.Hex(),
		Email:     mu.Email,
		Password:  mu.Password,
		Name:      mu.Name,
		Firstname: mu.Firstname,
		BirthDate: mu.BirthDate,
		City:      mu.City,
		Zipcode:   mu.Zipcode,
	}
	if !mu.Role.IsZero() {
		user.RoleID = mu.Role.Hex()
	}
	return user
}
