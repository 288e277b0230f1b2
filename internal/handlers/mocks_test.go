package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fake cursors yielding fixed slices.

type vehicleCursor struct{ items []models.Vehicle }

func (c *vehicleCursor) All(ctx context.Context, out interface{}) error {
	*out.(*[]models.Vehicle) = c.items
	return nil
}
func (c *vehicleCursor) Close(ctx context.Context) error { return nil }

type repairCursor struct{ items []models.RepairRecord }

func (c *repairCursor) All(ctx context.Context, out interface{}) error {
	*out.(*[]models.RepairRecord) = c.items
	return nil
}
func (c *repairCursor) Close(ctx context.Context) error { return nil }

type requestCursor struct{ items []models.ModificationRequest }

func (c *requestCursor) All(ctx context.Context, out interface{}) error {
	*out.(*[]models.ModificationRequest) = c.items
	return nil
}
func (c *requestCursor) Close(ctx context.Context) error { return nil }

type activityCursor struct{ items []models.ActivityEntry }

func (c *activityCursor) All(ctx context.Context, out interface{}) error {
	*out.(*[]models.ActivityEntry) = c.items
	return nil
}
func (c *activityCursor) Close(ctx context.Context) error { return nil }

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.Cursor), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicleStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockRepairCollection is a mock implementation of db.RepairCollection
type MockRepairCollection struct {
	mock.Mock
}

func (m *MockRepairCollection) InsertRepair(ctx context.Context, repair models.RepairRecord) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *MockRepairCollection) FindRepairs(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.Cursor), args.Error(1)
}

func (m *MockRepairCollection) FindRepairByID(ctx context.Context, id string) (*models.RepairRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRecord), args.Error(1)
}

func (m *MockRepairCollection) UpdateRepairStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockRequestCollection is a mock implementation of db.RequestCollection
type MockRequestCollection struct {
	mock.Mock
}

func (m *MockRequestCollection) InsertRequest(ctx context.Context, request models.ModificationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestCollection) FindRequests(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.Cursor), args.Error(1)
}

func (m *MockRequestCollection) FindRequestByID(ctx context.Context, id string) (*models.ModificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ModificationRequest), args.Error(1)
}

func (m *MockRequestCollection) UpdateRequestStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockActivityCollection is a mock implementation of db.ActivityCollection
type MockActivityCollection struct {
	mock.Mock
}

func (m *MockActivityCollection) InsertActivity(ctx context.Context, entry models.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityCollection) FindActivities(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.Cursor), args.Error(1)
}

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Test helpers

func testRecorder(activities db.ActivityCollection) *activity.Recorder {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return activity.NewRecorder(activities, logger, nil)
}

func withClaims(r *http.Request, role models.Role) *http.Request {
	claims := &models.Claims{
		UserID: "2",
		Name:   "Kasun Silva",
		Email:  "kasun@lankanwheels.lk",
		Role:   role,
	}
	ctx := context.WithValue(r.Context(), middleware.UserContextKey, claims)
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
