package service

import (
	"context"
	"testing"

	"quizmaster-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRegister_DefaultsApplied(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeAttemptStore{}, newFakeProgressStore())

	user := &models.User{ID: "user-1", Email: "alex@example.com", Name: "Alex"}
	if err := svc.Register(context.Background(), user); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("Expected student role default, got %s", user.Role)
	}
	if user.Level != 1 {
		t.Errorf("Expected level 1, got %d", user.Level)
	}
	if user.FavoriteCategories == nil || user.Achievements == nil {
		t.Error("Expected empty slices, not nil")
	}
}

func TestRegister_RequiresEmailAndName(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeAttemptStore{}, newFakeProgressStore())

	if err := svc.Register(context.Background(), &models.User{ID: "u", Name: "Alex"}); err == nil {
		t.Error("Expected missing-email rejection")
	}
	if err := svc.Register(context.Background(), &models.User{ID: "u", Email: "a@b.c"}); err == nil {
		t.Error("Expected missing-name rejection")
	}
	if err := svc.Register(context.Background(), &models.User{ID: "u", Email: "a@b.c", Name: "A", Role: "superuser"}); err == nil {
		t.Error("Expected unknown-role rejection")
	}
}

func TestUpdateProfile_FiltersAggregateFields(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: "user-1", Name: "Alex", TotalPoints: 10})
	svc := NewUserService(users, &fakeAttemptStore{}, newFakeProgressStore())

	// total_points is owned by the aggregator; only name should pass.
	err := svc.UpdateProfile(context.Background(), "user-1", bson.M{
		"name":         "Alexis",
		"total_points": 9999,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	user, _ := users.FindByID(context.Background(), "user-1")
	if user.TotalPoints != 10 {
		t.Errorf("Aggregate field leaked through the profile update: %d", user.TotalPoints)
	}
}

func TestUpdateProfile_RejectsAllFilteredUpdate(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: "user-1"})
	svc := NewUserService(users, &fakeAttemptStore{}, newFakeProgressStore())

	err := svc.UpdateProfile(context.Background(), "user-1", bson.M{"average_score": 100})
	if err == nil {
		t.Error("Expected rejection when no editable field remains")
	}
}

func TestUserAttempts_DefaultLimit(t *testing.T) {
	attempts := &fakeAttemptStore{}
	for i := 0; i < 15; i++ {
		attempts.Append(context.Background(), &models.QuizAttempt{UserID: "user-1", Score: 50 + i})
	}
	svc := NewUserService(newFakeUserStore(), attempts, newFakeProgressStore())

	got, err := svc.UserAttempts(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("UserAttempts failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(got))
	}
	// Newest first.
	if got[0].Score != 64 {
		t.Errorf("Expected the latest attempt first, got score %d", got[0].Score)
	}
}
