package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/slstl/membership-system/internal/core/domain"
)

const membersCollection = "members"

type MongoMemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MongoMemberRepository {
	return &MongoMemberRepository{coll: db.Collection(membersCollection)}
}

type mongoMember struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Role       string             `bson:"role"`
	Status     string             `bson:"status"`
	JoinedDate time.Time          `bson:"joined_date"`
	Phone      string             `bson:"phone,omitempty"`
	Address    string             `bson:"address,omitempty"`
	CreatedBy  string             `bson:"created_by,omitempty"`
	UpdatedBy  string             `bson:"updated_by,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *MongoMemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	doc := toMongoMember(member)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	created := *member
	created.Email = doc.Email
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoMemberRepository) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(member.ID)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	doc := toMongoMember(member)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMemberExists
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

func (r *MongoMemberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MongoMemberRepository) FindAll(ctx context.Context) ([]domain.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	var members []domain.Member
	for cur.Next(ctx) {
		var mm mongoMember
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode member: %w", err)
		}
		members = append(members, *fromMongoMember(&mm))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *MongoMemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoMemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoMemberRepository) findOne(ctx context.Context, filter bson.M) (*domain.Member, error) {
	var mm mongoMember
	if err := r.coll.FindOne(ctx, filter).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return fromMongoMember(&mm), nil
}

func toMongoMember(m *domain.Member) mongoMember {
	return mongoMember{
		Name:       m.Name,
		Email:      strings.ToLower(m.Email),
		Role:       string(m.Role),
		Status:     string(m.Status),
		JoinedDate: m.JoinedDate,
		Phone:      m.Phone,
		Address:    m.Address,
		CreatedBy:  m.CreatedBy,
		UpdatedBy:  m.UpdatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromMongoMember(mm *mongoMember) *domain.Member {
	return &domain.Member{
		ID:         mm.ID.Hex(),
		Name:       mm.Name,
		Email:      mm.Email,
		Role:       domain.MemberRole(mm.Role),
		Status:     domain.MemberStatus(mm.Status),
		JoinedDate: mm.JoinedDate,
		Phone:      mm.Phone,
		Address:    mm.Address,
		CreatedBy:  mm.CreatedBy,
		UpdatedBy:  mm.UpdatedBy,
		CreatedAt:  mm.CreatedAt,
		UpdatedAt:  mm.UpdatedAt,
	}
}
