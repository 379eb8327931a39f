package split

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/sash/internal/split/constraint"
)

func startedDrag(t *testing.T, router *Router, pointerID int) *testRig {
	t.Helper()
	sched := NewMockScheduler()
	store := NewStoreWithScheduler(0.5, sched)
	ctrl, err := NewController(store, router, constraint.DefaultConfig(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewController() = %v", err)
	}
	ctrl.SetExtent(100)
	if pointerID >= 0 {
		ctrl.PointerDown(pointerID, 50)
	}
	ctrl.StartDrag(50)
	return &testRig{store: store, router: router, sched: sched, ctrl: ctrl}
}

func TestRouter_PointerUpForceStopsMatchingDrag(t *testing.T) {
	router := NewRouter()
	rig := startedDrag(t, router, 3)

	router.PointerUp(3)

	assert.False(t, rig.ctrl.Dragging())
	assert.False(t, rig.store.Dragging())
	dragger, id := router.Dragging()
	assert.Nil(t, dragger)
	assert.Equal(t, -1, id)
}

func TestRouter_PointerCancelForceStopsMatchingDrag(t *testing.T) {
	router := NewRouter()
	rig := startedDrag(t, router, 5)

	router.PointerCancel(5)

	assert.False(t, rig.ctrl.Dragging())
}

func TestRouter_ForeignPointerIDIsIgnored(t *testing.T) {
	router := NewRouter()
	rig := startedDrag(t, router, 3)

	router.PointerUp(4)

	assert.True(t, rig.ctrl.Dragging())
	dragger, _ := router.Dragging()
	assert.Same(t, rig.ctrl, dragger)
}

func TestRouter_NewRegistrationSupersedesWithoutForceStop(t *testing.T) {
	router := NewRouter()
	first := startedDrag(t, router, 1)
	second := startedDrag(t, router, 2)

	dragger, id := router.Dragging()
	assert.Same(t, second.ctrl, dragger)
	assert.Equal(t, 2, id)
	assert.True(t, first.ctrl.Dragging(), "superseded drag is not force-stopped")

	// the superseded controller's own end path must not clear the new
	// registration
	first.ctrl.EndDrag()
	dragger, _ = router.Dragging()
	assert.Same(t, second.ctrl, dragger)
}

func TestRouter_ReleaseForSupersededIDIsIgnored(t *testing.T) {
	router := NewRouter()
	startedDrag(t, router, 1)
	second := startedDrag(t, router, 2)

	router.PointerUp(1)

	assert.True(t, second.ctrl.Dragging())
}

func TestRouter_ResetDropsRegistration(t *testing.T) {
	router := NewRouter()
	rig := startedDrag(t, router, 3)

	router.Reset()

	dragger, id := router.Dragging()
	assert.Nil(t, dragger)
	assert.Equal(t, -1, id)

	// the drag itself is untouched; only the registry forgot it
	assert.True(t, rig.ctrl.Dragging())
	router.PointerUp(3)
	assert.True(t, rig.ctrl.Dragging())
}

func TestSharedRouter_ReturnsOneInstance(t *testing.T) {
	assert.Same(t, SharedRouter(), SharedRouter())
}
