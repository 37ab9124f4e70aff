package catalog

// DefaultNearEndThreshold is the distance from the end of the content at which
// the next batch is requested.
const DefaultNearEndThreshold = 400

// Metrics describe the scrollable grid at the time of a scroll event.
type Metrics struct {
	ViewportHeight int
	ScrollOffset   int
	ContentHeight  int
}

// NearEnd reports whether the bottom of the viewport is within threshold of
// the end of the content.
func (m Metrics) NearEnd(threshold int) bool {
	return m.ViewportHeight+m.ScrollOffset >= m.ContentHeight-threshold
}

// Subscription is the handle of an attached listener.
type Subscription struct {
	watcher   *ScrollWatcher
	onNearEnd func()
}

// Active reports whether the subscription is still the attached one.
func (s *Subscription) Active() bool {
	return s != nil && s.watcher != nil && s.watcher.sub == s
}

// ScrollWatcher holds at most one near-end listener. It is not safe for
// concurrent use; the owner calls it from its event loop.
type ScrollWatcher struct {
	threshold int
	sub       *Subscription
}

// NewScrollWatcher returns a detached watcher. A negative threshold uses
// DefaultNearEndThreshold.
func NewScrollWatcher(threshold int) *ScrollWatcher {
	if threshold < 0 {
		threshold = DefaultNearEndThreshold
	}
	return &ScrollWatcher{threshold: threshold}
}

// Attach registers onNearEnd, detaching any previous listener first.
func (w *ScrollWatcher) Attach(onNearEnd func()) *Subscription {
	w.Detach()
	w.sub = &Subscription{watcher: w, onNearEnd: onNearEnd}
	return w.sub
}

// Detach drops the listener. Safe to call when nothing is attached.
func (w *ScrollWatcher) Detach() {
	w.sub = nil
}

// Attached reports whether a listener is registered.
func (w *ScrollWatcher) Attached() bool {
	return w.sub != nil
}

// Threshold returns the near-end distance.
func (w *ScrollWatcher) Threshold() int {
	return w.threshold
}

// Check fires the listener when m is near the end. It returns whether the
// listener fired. There is no debouncing.
func (w *ScrollWatcher) Check(m Metrics) bool {
	sub := w.sub
	if sub == nil || sub.onNearEnd == nil || !m.NearEnd(w.threshold) {
		return false
	}
	sub.onNearEnd()
	return true
}
