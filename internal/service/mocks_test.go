package service

import (
	"context"
	"time"

	"dining-planner/internal/ingest"
	"dining-planner/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetCatalog(ctx context.Context, location string) ([]model.FoodItem, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockCatalogRepository) GetByIDs(ctx context.Context, ids []string) ([]model.FoodItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockCatalogRepository) Upsert(ctx context.Context, item model.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpsertBatch(ctx context.Context, items []model.FoodItem) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Put(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlanRepository) CreatePlan(ctx context.Context, tx pgx.Tx, plan *model.MealPlan) error {
	args := m.Called(ctx, tx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) CreatePlanItems(ctx context.Context, tx pgx.Tx, items []model.MealPlanItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockPlanRepository) GetPlan(ctx context.Context, userID string, date time.Time) (*model.MealPlan, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

// MockImporter is a mock implementation of BatchImporter.
type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(ctx context.Context, paths []string) []ingest.Batch {
	args := m.Called(ctx, paths)
	return args.Get(0).([]ingest.Batch)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func floatPtr(v float64) *float64 { return &v }

// testCatalog is a small two-location catalog.
func testCatalog() []model.FoodItem {
	return []model.FoodItem{
		{ID: "steak", Name: "Steak Plate", Location: "Grill", Category: model.CategoryEntree, Price: 14, Calories: 700, Protein: 50, Carbs: 30, Fat: 35, Available: true},
		{ID: "chicken", Name: "Chicken Bowl", Location: "Grill", Category: model.CategoryEntree, Price: 8, Calories: 550, Protein: 45, Carbs: 50, Fat: 15, Available: true, Tags: []string{"high-protein"}},
		{ID: "tofu", Name: "Tofu Stir Fry", Location: "Grill", Category: model.CategoryEntree, Price: 7, Calories: 450, Protein: 22, Carbs: 55, Fat: 12, Available: true, Tags: []string{"vegan", "vegetarian"}, Allergens: []string{"soy"}},
		{ID: "fries", Name: "Fries", Location: "Grill", Category: model.CategorySide, Price: 3, Calories: 380, Protein: 4, Carbs: 48, Fat: 18, Available: true, Tags: []string{"vegan", "vegetarian"}},
		{ID: "salad", Name: "Side Salad", Location: "Grill", Category: model.CategorySide, Price: 4, Calories: 120, Protein: 3, Carbs: 10, Fat: 7, Available: true, Tags: []string{"vegetarian", "gluten-free"}, Sodium: floatPtr(210)},
		{ID: "shake", Name: "Milkshake", Location: "Grill", Category: model.CategoryBeverage, Price: 5, Calories: 600, Protein: 12, Carbs: 80, Fat: 25, Available: true, Allergens: []string{"milk"}},
		{ID: "water", Name: "Water", Location: "Grill", Category: model.CategoryBeverage, Price: 1, Calories: 0, Available: true},
		{ID: "bar", Name: "Protein Bar", Location: "Grill", Category: model.CategorySnack, Price: 3, Calories: 210, Protein: 20, Carbs: 22, Fat: 7, Available: true, Allergens: []string{"peanuts"}},
		{ID: "cookie", Name: "Cookie", Location: "Grill", Category: model.CategoryDessert, Price: 2, Calories: 250, Protein: 3, Carbs: 35, Fat: 12, Available: false},
	}
}

func catalogItem(id string) model.FoodItem {
	for _, item := range testCatalog() {
		if item.ID == id {
			return item
		}
	}
	panic("unknown test item " + id)
}
