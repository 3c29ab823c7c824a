package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devio/fornecedores-api/internal/core/domain"
)

const (
	usersCollection = "users"
	rolesCollection = "roles"
)

// AuthRepository is the MongoDB-backed credential store. Users embed their
// direct claims and role names; role claims live in a separate collection so
// the claim set can be re-derived at every token issuance.
type AuthRepository struct {
	users *mongo.Collection
	roles *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *AuthRepository {
	return &AuthRepository{
		users: db.Collection(usersCollection),
		roles: db.Collection(rolesCollection),
	}
}

type mongoRole struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Claims []domain.Claim     `bson:"claims,omitempty"`
}

type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	PasswordHash   string             `bson:"password_hash"`
	EmailConfirmed bool               `bson:"email_confirmed"`
	Claims         []domain.Claim     `bson:"claims,omitempty"`
	Roles          []string           `bson:"roles,omitempty"`
	FailedAttempts int                `bson:"failed_attempts"`
	LockoutUntil   int64              `bson:"lockout_until,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		EmailConfirmed: user.EmailConfirmed,
		Claims:         user.Claims,
		Roles:          user.Roles,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get the assigned id
	return r.FindByEmail(ctx, user.Email)
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:             mu.ID.Hex(),
		Email:          mu.Email,
		PasswordHash:   mu.PasswordHash,
		EmailConfirmed: mu.EmailConfirmed,
		Claims:         mu.Claims,
		Roles:          mu.Roles,
		FailedAttempts: mu.FailedAttempts,
		LockoutUntil:   unixToTime(mu.LockoutUntil),
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}, nil
}

func (r *AuthRepository) SaveLockout(ctx context.Context, email string, failedAttempts int, lockoutUntil time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var until int64
	if !lockoutUntil.IsZero() {
		until = lockoutUntil.Unix()
	}

	_, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"failed_attempts": failedAttempts,
		"lockout_until":   until,
		"updated_at":      time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("save lockout: %w", err)
	}
	return nil
}

func (r *AuthRepository) FindRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.roles.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRole
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}

	roles := make([]domain.Role, len(docs))
	for i, d := range docs {
		roles[i] = domain.Role{ID: d.ID.Hex(), Name: d.Name, Claims: d.Claims}
	}
	return roles, nil
}

// EnsureRole upserts a role by name, keeping its claim set current. Used at
// startup to seed the roles the authorization policies rely on.
func (r *AuthRepository) EnsureRole(ctx context.Context, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.roles.UpdateOne(ctx,
		bson.M{"name": role.Name},
		bson.M{"$set": bson.M{"claims": role.Claims}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ensure role %q: %w", role.Name, err)
	}
	return nil
}

// EnsureIndexes creates the unique e-mail index on users and the unique name
// index on roles.
func (r *AuthRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
