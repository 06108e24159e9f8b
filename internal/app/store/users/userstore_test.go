package userstore_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	userstore "github.com/babyfiction/storehub/internal/app/store/users"
	"github.com/babyfiction/storehub/internal/domain/models"
	"github.com/babyfiction/storehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildFilter_Empty(t *testing.T) {
	filter := userstore.BuildFilter(userstore.ListFilter{})
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}
}

func TestBuildFilter_RoleAndActive(t *testing.T) {
	filter := userstore.BuildFilter(userstore.ListFilter{Role: "driver", IsActive: boolPtr(false)})

	if filter["role"] != "driver" {
		t.Errorf("role: got %v, want driver", filter["role"])
	}
	if filter["is_active"] != false {
		t.Errorf("is_active: got %v, want false", filter["is_active"])
	}
	if _, hasOr := filter["$or"]; hasOr {
		t.Error("no search given, $or should be absent")
	}
}

func TestBuildFilter_SearchSpansNameEmailPhone(t *testing.T) {
	filter := userstore.BuildFilter(userstore.ListFilter{Search: "smith"})

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("$or: got %T, want []bson.M", filter["$or"])
	}
	var fields []string
	for _, clause := range or {
		for field, v := range clause {
			fields = append(fields, field)
			re, ok := v.(primitive.Regex)
			if !ok {
				t.Fatalf("field %s: got %T, want primitive.Regex", field, v)
			}
			if re.Options != "i" {
				t.Errorf("field %s: options %q, want case-insensitive", field, re.Options)
			}
		}
	}
	want := []string{"first_name", "last_name", "email", "phone"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("search fields: got %v, want %v", fields, want)
	}
}

func TestBuildFilter_SearchIsLiteral(t *testing.T) {
	filter := userstore.BuildFilter(userstore.ListFilter{Search: "a.b+c"})

	or := filter["$or"].([]bson.M)
	re := or[0]["first_name"].(primitive.Regex)
	if re.Pattern == "a.b+c" {
		t.Error("search text used as a raw pattern; metacharacters must be escaped")
	}
}

func TestListPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	for i := 0; i < 25; i++ {
		fixtures.CreateUser(ctx, "User", fmt.Sprintf("Num%02d", i),
			fmt.Sprintf("user%02d@example.com", i),
			testutil.CreatedAt(now.Add(-time.Duration(i)*time.Hour)))
	}

	users, total, err := store.ListPage(ctx, userstore.ListFilter{}, 2, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 25 {
		t.Errorf("total: got %d, want 25", total)
	}
	if len(users) != 10 {
		t.Fatalf("page size: got %d, want 10", len(users))
	}

	// Sorted newest first, so page 2 starts with the 11th newest.
	if users[0].LastName != "Num10" {
		t.Errorf("first user on page 2: got %s, want Num10", users[0].LastName)
	}

	// Last page is partial.
	users, _, err = store.ListPage(ctx, userstore.ListFilter{}, 3, 10)
	if err != nil {
		t.Fatalf("ListPage page 3: %v", err)
	}
	if len(users) != 5 {
		t.Errorf("last page size: got %d, want 5", len(users))
	}
}

func TestListPage_ExcludesSensitiveFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Secret", "Holder", "secret@example.com")

	users, _, err := store.ListPage(ctx, userstore.ListFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	u := users[0]
	if u.Password != "" || u.EmailVerificationToken != "" || u.PasswordResetToken != "" {
		t.Error("sensitive fields survived the list projection")
	}
	if u.Email != "secret@example.com" {
		t.Errorf("email: got %q", u.Email)
	}
}

func TestListPage_Filtered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Active", "Driver", "ad@example.com", testutil.WithRole(models.RoleDriver))
	fixtures.CreateUser(ctx, "Idle", "Driver", "id@example.com", testutil.WithRole(models.RoleDriver), testutil.Inactive())
	fixtures.CreateUser(ctx, "Plain", "Customer", "pc@example.com")

	users, total, err := store.ListPage(ctx,
		userstore.ListFilter{Role: models.RoleDriver, IsActive: boolPtr(true)}, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("got total=%d len=%d, want 1/1", total, len(users))
	}
	if users[0].Email != "ad@example.com" {
		t.Errorf("got %s, want the active driver", users[0].Email)
	}
}

func TestListPage_SearchMatchesCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Maya", "Smith", "maya@example.com")
	fixtures.CreateUser(ctx, "Omar", "Jones", "omar@example.com", testutil.WithPhone("+15551234567"))

	users, _, err := store.ListPage(ctx, userstore.ListFilter{Search: "SMITH"}, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(users) != 1 || users[0].FirstName != "Maya" {
		t.Errorf("search by last name: got %v", users)
	}

	users, _, err = store.ListPage(ctx, userstore.ListFilter{Search: "555123"}, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(users) != 1 || users[0].FirstName != "Omar" {
		t.Errorf("search by phone: got %v", users)
	}
}

func TestCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	fixtures.CreateUser(ctx, "New", "Customer", "nc@example.com",
		testutil.CreatedAt(now.AddDate(0, 0, -1)), testutil.LastLogin(now.Add(-time.Hour)))
	fixtures.CreateUser(ctx, "Old", "Driver", "od@example.com",
		testutil.WithRole(models.RoleDriver),
		testutil.CreatedAt(now.AddDate(0, 0, -20)), testutil.LastLogin(now.AddDate(0, 0, -40)))
	fixtures.CreateAdmin(ctx, "Ada", "Admin", "aa@example.com")

	total, err := store.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if total != 3 {
		t.Errorf("CountAll: got %d, want 3", total)
	}

	recent, err := store.CountCreatedSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if recent != 2 {
		t.Errorf("CountCreatedSince: got %d, want 2 (admin created now, customer 1d ago)", recent)
	}

	// The admin fixture has no last_login, the driver's is 40 days stale.
	active, err := store.CountActiveSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("CountActiveSince: %v", err)
	}
	if active != 1 {
		t.Errorf("CountActiveSince: got %d, want 1", active)
	}

	byRole, err := store.CountByRole(ctx)
	if err != nil {
		t.Fatalf("CountByRole: %v", err)
	}
	want := map[string]int64{"customer": 1, "driver": 1, "admin": 1}
	if !reflect.DeepEqual(byRole, want) {
		t.Errorf("CountByRole: got %v, want %v", byRole, want)
	}
}

func TestSetActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Toggle", "Target", "tt@example.com")

	updated, err := store.SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if updated.IsActive {
		t.Error("expected user to be deactivated")
	}
	if updated.Password != "" {
		t.Error("updated document leaked the password field")
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.IsActive {
		t.Error("deactivation not persisted")
	}
}

func TestSetActive_UnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.SetActive(ctx, primitive.NewObjectID(), true)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("got err %v, want mongo.ErrNoDocuments", err)
	}
}
