package split

import "sync"

// Router is a registry of the one controller allowed to be dragging at a
// time, keyed by the pointer that owns the gesture. Feeding it every
// pointer release seen in the event stream guarantees a drag whose release
// landed on some other surface still terminates instead of sticking to the
// cursor.
type Router struct {
	mu        sync.Mutex
	dragger   *Controller
	pointerID int
}

// NewRouter creates an empty router. Production code usually shares one
// via SharedRouter; tests build their own so state never leaks between
// cases.
func NewRouter() *Router {
	return &Router{pointerID: -1}
}

var (
	sharedMu     sync.Mutex
	sharedRouter *Router
)

// SharedRouter returns the lazily created process-wide router.
func SharedRouter() *Router {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedRouter == nil {
		sharedRouter = NewRouter()
	}
	return sharedRouter
}

// SetDragging records c as the active dragger for pointerID. A negative id
// means the pointer is not individually tracked and release matching is
// disabled. A new registration supersedes the previous one without
// force-stopping it; the superseded controller cleans up through its own
// end path.
func (r *Router) SetDragging(c *Controller, pointerID int) {
	r.mu.Lock()
	r.dragger = c
	r.pointerID = pointerID
	r.mu.Unlock()
}

// ClearDragging removes the registration if c currently holds it.
func (r *Router) ClearDragging(c *Controller) {
	r.mu.Lock()
	if r.dragger == c {
		r.dragger = nil
		r.pointerID = -1
	}
	r.mu.Unlock()
}

// Dragging returns the registered controller and its pointer id, or
// (nil, -1) when no drag is registered.
func (r *Router) Dragging() (*Controller, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dragger, r.pointerID
}

// PointerUp force-stops the registered drag when id matches its tracked
// pointer. Untracked registrations and foreign ids are no-ops.
func (r *Router) PointerUp(id int) {
	r.release(id)
}

// PointerCancel behaves like PointerUp for cancelled pointers.
func (r *Router) PointerCancel(id int) {
	r.release(id)
}

// Reset drops any registration. Test hook; also suits app teardown.
func (r *Router) Reset() {
	r.mu.Lock()
	r.dragger = nil
	r.pointerID = -1
	r.mu.Unlock()
}

// release resolves the matching controller outside the router lock so the
// controller's cleanup can call back into ClearDragging.
func (r *Router) release(id int) {
	r.mu.Lock()
	c := r.dragger
	match := c != nil && id >= 0 && r.pointerID == id
	r.mu.Unlock()
	if match {
		c.ForceStop()
	}
}
