// seed inserts the default users and a handful of sample members into the
// local dev database. Existing records are left alone, so re-runs are safe.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/service"
	"github.com/slstl/membership-system/internal/infrastructure/db/mongo"
	"github.com/slstl/membership-system/internal/pkg/config"
)

type seedUser struct {
	username string
	email    string
	password string
	role     string
}

var users = []seedUser{
	{"admin", "admin@slstl.lk", "admin123", domain.RoleAdmin},
	{"manager", "manager@slstl.lk", "manager123", domain.RoleManager},
	{"member", "member@slstl.lk", "member123", domain.RoleMember},
}

type seedMember struct {
	name    string
	email   string
	role    domain.MemberRole
	status  domain.MemberStatus
	phone   string
	address string
}

var members = []seedMember{
	{"John Doe", "john@slstl.lk", domain.MemberRoleAdmin, domain.MemberActive, "+94 77 123 4567", "Colombo"},
	{"Jane Smith", "jane@slstl.lk", domain.MemberRoleMember, domain.MemberActive, "+94 77 234 5678", "Kandy"},
	{"Bob Johnson", "bob@slstl.lk", domain.MemberRoleMember, domain.MemberActive, "", ""},
	{"Alice Williams", "alice@slstl.lk", domain.MemberRoleModerator, domain.MemberActive, "+94 77 345 6789", "Galle"},
	{"Charlie Brown", "charlie@slstl.lk", domain.MemberRoleMember, domain.MemberInactive, "", ""},
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	userRepo := mongo.NewUserRepository(db)
	memberRepo := mongo.NewMemberRepository(db)

	var created, skipped int

	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			log.Fatalf("hash password for %s: %v", u.email, err)
		}
		_, err = userRepo.Create(ctx, &domain.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			CreatedAt:    time.Now().UTC(),
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrUserExists):
			skipped++
		default:
			log.Fatalf("create user %s: %v", u.email, err)
		}
	}
	log.Printf("users: %d created, %d already present", created, skipped)

	created, skipped = 0, 0
	now := time.Now().UTC()
	for _, m := range members {
		_, err := memberRepo.Create(ctx, &domain.Member{
			Name:       m.name,
			Email:      m.email,
			Role:       m.role,
			Status:     m.status,
			JoinedDate: now,
			Phone:      m.phone,
			Address:    m.address,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrMemberExists):
			skipped++
		default:
			log.Fatalf("create member %s: %v", m.email, err)
		}
	}
	log.Printf("members: %d created, %d already present", created, skipped)
}
