package commands_test

import (
	"context"
	"errors"
	"testing"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/services"
	"planner/internal/core/ports"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRejectPlanRepository struct{ mock.Mock }

func (m *MockRejectPlanRepository) Save(ctx context.Context, aggregate *plan.Plan) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRejectPlanRepository) GetCurrent(ctx context.Context) (*plan.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

type MockRejectUoW struct{ mock.Mock }

func (m *MockRejectUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRejectUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRejectUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRejectUoW) PlanRepository() ports.PlanRepository {
	args := m.Called()
	return args.Get(0).(ports.PlanRepository)
}

type MockRejectUoWFactory struct{ mock.Mock }

func (m *MockRejectUoWFactory) Create() commands.PlanUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanUoW)
}

// rejectScenarioPlan builds {1:[10,40], 2:[20,50], 3:[30]}.
func rejectScenarioPlan(t *testing.T) *plan.Plan {
	t.Helper()
	return testPlan(t, map[kernel.RiderID][]kernel.OrderID{
		testRiderID(t, 1): {testOrderID(t, 10), testOrderID(t, 40)},
		testRiderID(t, 2): {testOrderID(t, 20), testOrderID(t, 50)},
		testRiderID(t, 3): {testOrderID(t, 30)},
	})
}

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRejectOrderCommand(testRiderID(t, 1), testOrderID(t, 10))
	require.NoError(t, err)

	current := rejectScenarioPlan(t)

	planRepo := new(MockRejectPlanRepository)
	uow := new(MockRejectUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PlanRepository").Return(planRepo)
	planRepo.On("GetCurrent", ctx).Return(current, nil).Once()
	planRepo.On("Save", ctx, mock.AnythingOfType("*plan.Plan")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRejectUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	planRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	// Order 10 leaves rider 1 and is appended to rider 3, the least loaded.
	saved := planRepo.Calls[1].Arguments[1].(*plan.Plan)
	assert.Equal(t,
		[]kernel.OrderID{testOrderID(t, 40)},
		saved.Sequence(testRiderID(t, 1)))
	assert.Equal(t,
		[]kernel.OrderID{testOrderID(t, 20), testOrderID(t, 50)},
		saved.Sequence(testRiderID(t, 2)))
	assert.Equal(t,
		[]kernel.OrderID{testOrderID(t, 30), testOrderID(t, 10)},
		saved.Sequence(testRiderID(t, 3)))
}

func TestRejectOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RejectOrderCommand{} // not constructed properly

	factory := new(MockRejectUoWFactory)
	handler := commands.NewRejectOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRejectOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRejectOrderCommandHandler_Handle_MismatchedEventSkipsSave(t *testing.T) {
	ctx := t.Context()
	// Rider 2 does not hold order 10.
	cmd, err := commands.NewRejectOrderCommand(testRiderID(t, 2), testOrderID(t, 10))
	require.NoError(t, err)

	current := rejectScenarioPlan(t)

	planRepo := new(MockRejectPlanRepository)
	uow := new(MockRejectUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PlanRepository").Return(planRepo).Once()
	planRepo.On("GetCurrent", ctx).Return(current, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRejectUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	planRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_PlanNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRejectOrderCommand(testRiderID(t, 1), testOrderID(t, 10))
	require.NoError(t, err)

	planRepo := new(MockRejectPlanRepository)
	uow := new(MockRejectUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PlanRepository").Return(planRepo).Once()
	planRepo.On("GetCurrent", ctx).Return(nil, errs.NewObjectNotFoundError("plan", nil)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRejectUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlanNotFound)
}

func TestRejectOrderCommandHandler_Handle_NoAlternateRider(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRejectOrderCommand(testRiderID(t, 1), testOrderID(t, 10))
	require.NoError(t, err)

	current := testPlan(t, map[kernel.RiderID][]kernel.OrderID{
		testRiderID(t, 1): {testOrderID(t, 10)},
	})

	planRepo := new(MockRejectPlanRepository)
	uow := new(MockRejectUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PlanRepository").Return(planRepo).Once()
	planRepo.On("GetCurrent", ctx).Return(current, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRejectUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoAlternateRider)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRejectOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRejectOrderCommand(testRiderID(t, 1), testOrderID(t, 10))
	require.NoError(t, err)

	current := rejectScenarioPlan(t)

	planRepo := new(MockRejectPlanRepository)
	uow := new(MockRejectUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PlanRepository").Return(planRepo)
	planRepo.On("GetCurrent", ctx).Return(current, nil).Once()
	planRepo.On("Save", ctx, mock.AnythingOfType("*plan.Plan")).
		Return(errors.New("save error")).
		Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRejectUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "save error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
