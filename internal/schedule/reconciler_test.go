package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type fakeBlueprints struct {
	blueprint.Repository
	byDay   map[string]*blueprint.Blueprint
	slots   map[uuid.UUID]*blueprint.TimeSlot
	deleted []uuid.UUID
}

func (f *fakeBlueprints) FindActiveByDay(day string) (*blueprint.Blueprint, error) {
	if bp, ok := f.byDay[day]; ok {
		return bp, nil
	}
	return nil, blueprint.ErrNotFound
}

func (f *fakeBlueprints) FindSlots(blueprintID, categoryID *uuid.UUID) ([]blueprint.TimeSlot, error) {
	var out []blueprint.TimeSlot
	for _, s := range f.slots {
		if blueprintID == nil || s.BlueprintID == *blueprintID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeBlueprints) FindSlotByID(id uuid.UUID) (*blueprint.TimeSlot, error) {
	if s, ok := f.slots[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, blueprint.ErrSlotNotFound
}

func (f *fakeBlueprints) DeleteSlot(id uuid.UUID) error {
	delete(f.slots, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTasks struct {
	task.Repository
	tasks map[uuid.UUID]*task.Task
}

func (f *fakeTasks) FindByID(id uuid.UUID) (*task.Task, error) {
	if t, ok := f.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, task.ErrNotFound
}

func (f *fakeTasks) FindByGoalAndTitle(goalID uuid.UUID, title string) (*task.Task, error) {
	for _, t := range f.tasks {
		if t.GoalID == goalID && t.Title == title {
			copied := *t
			return &copied, nil
		}
	}
	return nil, task.ErrNotFound
}

func (f *fakeTasks) Update(t *task.Task) error {
	copied := *t
	f.tasks[t.ID] = &copied
	return nil
}

type fakeGenerator struct {
	calls int
}

func (f *fakeGenerator) GenerateWeekly(ctx context.Context) bool {
	f.calls++
	return true
}

type fakeCategories struct {
	category.Repository
}

func (f *fakeCategories) FindByID(id uuid.UUID) (*category.Category, error) {
	return &category.Category{ID: id, Name: "Study", Color: "#0d6efd"}, nil
}

type fakeGoals struct {
	goal.Repository
}

func (f *fakeGoals) FindByID(id uuid.UUID) (*goal.Goal, error) {
	return &goal.Goal{ID: id, Title: "Study Master Plan"}, nil
}

func newTestReconciler(bps *fakeBlueprints, tasks *fakeTasks, gen *fakeGenerator) *reconciler {
	return &reconciler{
		blueprints: bps,
		tasks:      tasks,
		goals:      &fakeGoals{},
		categories: &fakeCategories{},
		generator:  gen,
		now:        func() time.Time { return planNow },
	}
}

func TestDailySchedule(t *testing.T) {
	t.Run("missing blueprint yields no-schedule result", func(t *testing.T) {
		r := newTestReconciler(&fakeBlueprints{byDay: map[string]*blueprint.Blueprint{}}, &fakeTasks{}, &fakeGenerator{})

		result, err := r.DailySchedule(context.Background(), "Sunday")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.HasSchedule {
			t.Error("expected has_schedule to be false")
		}
		if len(result.Slots) != 0 {
			t.Errorf("expected no slots, got %d", len(result.Slots))
		}
		if result.Day != "Sunday" {
			t.Errorf("expected day Sunday, got %s", result.Day)
		}
	})

	t.Run("rejects unknown day names", func(t *testing.T) {
		r := newTestReconciler(&fakeBlueprints{}, &fakeTasks{}, &fakeGenerator{})
		if _, err := r.DailySchedule(context.Background(), "Someday"); err != ErrInvalidDay {
			t.Fatalf("expected ErrInvalidDay, got %v", err)
		}
	})

	t.Run("empty day resolves to today", func(t *testing.T) {
		r := newTestReconciler(&fakeBlueprints{byDay: map[string]*blueprint.Blueprint{}}, &fakeTasks{}, &fakeGenerator{})
		result, err := r.DailySchedule(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Day != "Monday" {
			t.Errorf("expected Monday, got %s", result.Day)
		}
	})
}

func TestMarkSlotComplete(t *testing.T) {
	goalID := uuid.New()
	taskID := uuid.New()
	slotID := uuid.New()

	newFixture := func(withTaskLink bool) (*fakeBlueprints, *fakeTasks) {
		slot := &blueprint.TimeSlot{ID: slotID, Title: "physics", GoalID: &goalID}
		if withTaskLink {
			slot.TaskID = &taskID
		}
		bps := &fakeBlueprints{slots: map[uuid.UUID]*blueprint.TimeSlot{slotID: slot}}
		tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
			taskID: {ID: taskID, GoalID: goalID, Title: "physics"},
		}}
		return bps, tasks
	}

	t.Run("completes via direct task link", func(t *testing.T) {
		bps, tasks := newFixture(true)
		r := newTestReconciler(bps, tasks, &fakeGenerator{})

		ok, err := r.MarkSlotComplete(context.Background(), slotID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
		got := tasks.tasks[taskID]
		if !got.Completed || got.CompletionDate == nil {
			t.Error("expected task completed with a completion date")
		}
	})

	t.Run("falls back to goal and title", func(t *testing.T) {
		bps, tasks := newFixture(false)
		r := newTestReconciler(bps, tasks, &fakeGenerator{})

		ok, err := r.MarkSlotComplete(context.Background(), slotID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
		if !tasks.tasks[taskID].Completed {
			t.Error("expected task completed via name fallback")
		}
	})

	t.Run("missing slot returns false", func(t *testing.T) {
		bps, tasks := newFixture(true)
		r := newTestReconciler(bps, tasks, &fakeGenerator{})

		ok, err := r.MarkSlotComplete(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected false for a missing slot")
		}
	})

	t.Run("slot without a backing task is a no-op success", func(t *testing.T) {
		bps, _ := newFixture(true)
		r := newTestReconciler(bps, &fakeTasks{tasks: map[uuid.UUID]*task.Task{}}, &fakeGenerator{})

		ok, err := r.MarkSlotComplete(context.Background(), slotID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
	})
}

func TestSnoozeTask(t *testing.T) {
	goalID := uuid.New()
	taskID := uuid.New()
	slotID := uuid.New()

	t.Run("pushes due task to tomorrow seventeen hundred", func(t *testing.T) {
		deadline := planNow.Add(-2 * time.Hour)
		bps := &fakeBlueprints{slots: map[uuid.UUID]*blueprint.TimeSlot{
			slotID: {ID: slotID, Title: "physics", GoalID: &goalID, TaskID: &taskID},
		}}
		tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
			taskID: {ID: taskID, GoalID: goalID, Title: "physics", Deadline: &deadline},
		}}
		gen := &fakeGenerator{}
		r := newTestReconciler(bps, tasks, gen)

		ok, err := r.SnoozeTask(context.Background(), slotID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}

		want := time.Date(2025, 3, 11, 17, 0, 0, 0, time.UTC)
		if got := tasks.tasks[taskID].Deadline; got == nil || !got.Equal(want) {
			t.Errorf("expected deadline %v, got %v", want, got)
		}
		if len(bps.deleted) != 1 || bps.deleted[0] != slotID {
			t.Error("expected the slot to be deleted")
		}
		if gen.calls != 1 {
			t.Errorf("expected one regeneration, got %d", gen.calls)
		}
	})

	t.Run("future deadline stays untouched", func(t *testing.T) {
		deadline := planNow.AddDate(0, 0, 5)
		bps := &fakeBlueprints{slots: map[uuid.UUID]*blueprint.TimeSlot{
			slotID: {ID: slotID, Title: "physics", GoalID: &goalID, TaskID: &taskID},
		}}
		tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
			taskID: {ID: taskID, GoalID: goalID, Title: "physics", Deadline: &deadline},
		}}
		gen := &fakeGenerator{}
		r := newTestReconciler(bps, tasks, gen)

		ok, err := r.SnoozeTask(context.Background(), slotID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
		if !tasks.tasks[taskID].Deadline.Equal(deadline) {
			t.Error("expected the deadline to stay put")
		}
		if gen.calls != 1 {
			t.Errorf("expected one regeneration, got %d", gen.calls)
		}
	})

	t.Run("missing slot returns false without regenerating", func(t *testing.T) {
		gen := &fakeGenerator{}
		r := newTestReconciler(&fakeBlueprints{slots: map[uuid.UUID]*blueprint.TimeSlot{}}, &fakeTasks{}, gen)

		ok, err := r.SnoozeTask(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || gen.calls != 0 {
			t.Error("expected false and no regeneration")
		}
	})
}

func TestHandleMissedTask(t *testing.T) {
	taskID := uuid.New()

	t.Run("overdue task moves to tomorrow and regenerates", func(t *testing.T) {
		deadline := planNow.AddDate(0, 0, -1)
		tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
			taskID: {ID: taskID, Title: "physics", Deadline: &deadline},
		}}
		gen := &fakeGenerator{}
		r := newTestReconciler(&fakeBlueprints{}, tasks, gen)

		ok, err := r.HandleMissedTask(context.Background(), taskID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
		want := time.Date(2025, 3, 11, 17, 0, 0, 0, time.UTC)
		if got := tasks.tasks[taskID].Deadline; got == nil || !got.Equal(want) {
			t.Errorf("expected deadline %v, got %v", want, got)
		}
		if gen.calls != 1 {
			t.Errorf("expected one regeneration, got %d", gen.calls)
		}
	})

	t.Run("future deadline stays put but still regenerates", func(t *testing.T) {
		deadline := planNow.AddDate(0, 0, 2)
		tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
			taskID: {ID: taskID, Title: "physics", Deadline: &deadline},
		}}
		gen := &fakeGenerator{}
		r := newTestReconciler(&fakeBlueprints{}, tasks, gen)

		ok, err := r.HandleMissedTask(context.Background(), taskID)
		if err != nil || !ok {
			t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
		}
		if got := tasks.tasks[taskID].Deadline; got == nil || !got.Equal(deadline) {
			t.Errorf("expected deadline to stay %v, got %v", deadline, got)
		}
		if gen.calls != 1 {
			t.Errorf("expected one regeneration, got %d", gen.calls)
		}
	})

	t.Run("unknown task returns false", func(t *testing.T) {
		r := newTestReconciler(&fakeBlueprints{}, &fakeTasks{tasks: map[uuid.UUID]*task.Task{}}, &fakeGenerator{})
		ok, err := r.HandleMissedTask(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected false for an unknown task")
		}
	})
}
