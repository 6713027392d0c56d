package core

import (
	"github.com/hupe1980/contexture/logging"
)

// Context is a node in the scope tree. It owns four name-keyed binding
// registries plus a flag set, and implements the tree-relative algorithms:
// conflict-checked registration, chain-relative resolution (Request/Execute),
// bidirectional notification posting, and flag scoping.
//
// Visibility rules:
//   - Request/Execute/FlagIsSet/UnsetFlag search self plus ancestors only; the
//     parent chain is linear so upward search is never ambiguous, while a
//     downward search could match several sibling subtrees.
//   - Registration conflicts and SetFlag conflicts are checked against the
//     whole context-tree (ancestors, self and descendants of self), so a stale
//     binding can never silently shadow a new one.
//   - Post is the one bidirectional operation: it reaches every scope in the
//     poster's context-tree exactly once, letting an ancestor observe events
//     from descendants it does not know about while siblings stay isolated.
//
// The model is single-threaded and cooperative: every operation runs to
// completion on the caller's goroutine, expiry predicates are polled lazily on
// access, and no background sweeping exists.
type Context struct {
	id     string
	name   string
	parent *Context
	// children in creation order; a destroyed child removes itself.
	children []*Context

	requestables map[RequestableName]*Requestable
	executables  map[ExecutableName]*Executable
	observers    map[NotificationName][]*Observer
	flags        map[FlagName]struct{}

	logger    logging.Logger
	destroyed bool
}

func newContext(name string, parent *Context, logger logging.Logger) *Context {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Context{
		id:           NewID(),
		name:         name,
		parent:       parent,
		requestables: map[RequestableName]*Requestable{},
		executables:  map[ExecutableName]*Executable{},
		observers:    map[NotificationName][]*Observer{},
		flags:        map[FlagName]struct{}{},
		logger:       logger,
	}
}

// ID returns the unique identifier assigned at construction.
func (c *Context) ID() string { return c.id }

// Name returns the diagnostic name given at construction.
func (c *Context) Name() string { return c.name }

// Parent returns the enclosing scope, or nil for the root.
func (c *Context) Parent() *Context { return c.parent }

// Children returns a defensive copy of the live child scopes in creation order.
func (c *Context) Children() []*Context {
	out := make([]*Context, len(c.children))
	copy(out, c.children)
	return out
}

// Destroyed reports whether Destroy has been called on this scope.
func (c *Context) Destroyed() bool { return c.destroyed }

// CreateSubcontext creates a child scope. The child holds a strong reference
// upward (keeping ancestors resolvable for as long as any descendant lives)
// while the parent's downward reference is released by the child's Destroy.
// Specialized scope types embed the returned *Context.
func (c *Context) CreateSubcontext(name string) *Context {
	c.ensureLive("CreateSubcontext")
	child := newContext(name, c, c.logger)
	c.children = append(c.children, child)
	return child
}

// Destroy releases this scope: it tears down any remaining descendant scopes,
// drops all local registrations and detaches itself from its parent's child
// list. Using a destroyed scope afterwards is a usage error. Destroy is
// idempotent.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	for _, child := range c.Children() {
		child.Destroy()
	}
	c.requestables = map[RequestableName]*Requestable{}
	c.executables = map[ExecutableName]*Executable{}
	c.observers = map[NotificationName][]*Observer{}
	c.flags = map[FlagName]struct{}{}
	if c.parent != nil {
		c.parent.removeChild(c)
		c.parent = nil
	}
	c.destroyed = true
	c.logger.Debug("destroyed scope %q", c.name)
}

func (c *Context) removeChild(child *Context) {
	for i, cur := range c.children {
		if cur == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *Context) ensureLive(op string) {
	if c.destroyed {
		usagePanic(op, "", c.name, ReasonDestroyed)
	}
}

// walkDown visits c and all its descendants depth-first pre-order, children in
// creation order. The walk stops early when fn returns false.
func (c *Context) walkDown(fn func(*Context) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.children {
		if !child.walkDown(fn) {
			return false
		}
	}
	return true
}

// requestableHit pairs a binding found during a conflict scan with the scope
// holding it.
type requestableHit struct {
	holder *Context
	rec    *Requestable
}

// findRequestables scans the registrant's entire context-tree (ancestors,
// then self plus descendants) and returns every binding under name. The scan
// must not stop at the first match: several scopes may hold the name at once
// (sibling subtrees of an ancestor), and an expired record found early must
// not mask an unexpired one elsewhere.
func (c *Context) findRequestables(name RequestableName) []requestableHit {
	var hits []requestableHit
	for p := c.parent; p != nil; p = p.parent {
		if r, ok := p.requestables[name]; ok {
			hits = append(hits, requestableHit{p, r})
		}
	}
	c.walkDown(func(n *Context) bool {
		if r, ok := n.requestables[name]; ok {
			hits = append(hits, requestableHit{n, r})
		}
		return true
	})
	return hits
}

type executableHit struct {
	holder *Context
	rec    *Executable
}

func (c *Context) findExecutables(name ExecutableName) []executableHit {
	var hits []executableHit
	for p := c.parent; p != nil; p = p.parent {
		if r, ok := p.executables[name]; ok {
			hits = append(hits, executableHit{p, r})
		}
	}
	c.walkDown(func(n *Context) bool {
		if r, ok := n.executables[name]; ok {
			hits = append(hits, executableHit{n, r})
		}
		return true
	})
	return hits
}

// AddRequestable registers an on-demand value binding in this scope. At most
// one unexpired binding of a given name may exist anywhere in the
// context-tree; an expired incumbent is evicted from whichever scope held it,
// an unexpired one is a usage error. The conflict is enforced eagerly here
// rather than at lookup time.
func (c *Context) AddRequestable(name RequestableName, server func() (any, error), opts ...BindingOption) {
	c.ensureLive("AddRequestable")
	hits := c.findRequestables(name)
	for _, hit := range hits {
		if !hit.rec.IsExpired() {
			usagePanic("AddRequestable", KindRequestable, string(name), ReasonDuplicateBinding)
		}
	}
	for _, hit := range hits {
		delete(hit.holder.requestables, name)
		c.logger.Debug("evicted expired requestable %q from scope %q", string(name), hit.holder.name)
	}
	cfg := newBindingConfig(opts)
	c.requestables[name] = &Requestable{
		Name:          name,
		Server:        server,
		IsRequestable: cfg.available,
		IsExpired:     cfg.expired,
	}
}

// AddExecutable registers an action binding in this scope, under the same
// tree-wide conflict rule as AddRequestable.
func (c *Context) AddExecutable(name ExecutableName, action func() error, opts ...BindingOption) {
	c.ensureLive("AddExecutable")
	hits := c.findExecutables(name)
	for _, hit := range hits {
		if !hit.rec.IsExpired() {
			usagePanic("AddExecutable", KindExecutable, string(name), ReasonDuplicateBinding)
		}
	}
	for _, hit := range hits {
		delete(hit.holder.executables, name)
		c.logger.Debug("evicted expired executable %q from scope %q", string(name), hit.holder.name)
	}
	cfg := newBindingConfig(opts)
	c.executables[name] = &Executable{
		Name:         name,
		Action:       action,
		IsExecutable: cfg.available,
		IsExpired:    cfg.expired,
	}
}

// AddObserver subscribes deliver to notifications posted under name anywhere
// in this scope's context-tree. Several observers may share a name; delivery
// within one scope preserves registration order.
func (c *Context) AddObserver(name NotificationName, deliver func(Notification) error, opts ...BindingOption) {
	c.AddObserverSet([]NotificationName{name}, deliver, opts...)
}

// AddObserverSet subscribes a single observer record under every name in
// names. Expiry of the record prunes it from each list lazily as posts touch
// them.
func (c *Context) AddObserverSet(names []NotificationName, deliver func(Notification) error, opts ...BindingOption) {
	c.ensureLive("AddObserver")
	cfg := newBindingConfig(opts)
	obs := &Observer{
		Names:       names,
		Deliver:     deliver,
		IsObserving: cfg.available,
		IsExpired:   cfg.expired,
	}
	for _, name := range names {
		c.observers[name] = append(c.observers[name], obs)
	}
}

// Request resolves name against the nearest scope in the ancestor chain
// holding a binding. An expired or unavailable binding blocks resolution with
// a usage error; it never falls through to an ancestor. A name absent from
// the entire chain is a usage error. A server failure is recoverable: it is
// logged and reported as no value (nil, false).
func (c *Context) Request(name RequestableName) (any, bool) {
	c.ensureLive("Request")
	for p := c; p != nil; p = p.parent {
		rec, ok := p.requestables[name]
		if !ok {
			continue
		}
		if rec.IsExpired() {
			usagePanic("Request", KindRequestable, string(name), ReasonExpired)
		}
		if !rec.IsRequestable() {
			usagePanic("Request", KindRequestable, string(name), ReasonUnavailable)
		}
		v, err := rec.Server()
		if err != nil {
			c.logger.Warn("requestable %q server failed: %v", string(name), err)
			return nil, false
		}
		return v, true
	}
	usagePanic("Request", KindRequestable, string(name), ReasonNotFound)
	return nil, false
}

// RequestAs resolves name via c.Request and asserts the payload to T. Payload
// types are caller-asserted; a mismatch is a usage error, not a recoverable
// one.
func RequestAs[T any](c *Context, name RequestableName) (T, bool) {
	var zero T
	v, ok := c.Request(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		usagePanic("Request", KindRequestable, string(name), ReasonWrongType)
	}
	return t, true
}

// Execute resolves name the same way Request does and runs the bound action.
// It reports true when the action ran successfully; an action failure is
// recoverable (logged, false). Exhausting the ancestor chain is a usage
// error.
func (c *Context) Execute(name ExecutableName) bool {
	c.ensureLive("Execute")
	for p := c; p != nil; p = p.parent {
		rec, ok := p.executables[name]
		if !ok {
			continue
		}
		if rec.IsExpired() {
			usagePanic("Execute", KindExecutable, string(name), ReasonExpired)
		}
		if !rec.IsExecutable() {
			usagePanic("Execute", KindExecutable, string(name), ReasonUnavailable)
		}
		if err := rec.Action(); err != nil {
			c.logger.Warn("executable %q action failed: %v", string(name), err)
			return false
		}
		return true
	}
	usagePanic("Execute", KindExecutable, string(name), ReasonNotFound)
	return false
}

// SetFlag raises the flag in this scope. At most one flag of a given name may
// be set anywhere in the context-tree at a time; a conflict anywhere in it is
// a usage error.
func (c *Context) SetFlag(name FlagName) {
	c.ensureLive("SetFlag")
	conflict := false
	for p := c.parent; p != nil; p = p.parent {
		if _, ok := p.flags[name]; ok {
			conflict = true
			break
		}
	}
	if !conflict {
		c.walkDown(func(n *Context) bool {
			if _, ok := n.flags[name]; ok {
				conflict = true
				return false
			}
			return true
		})
	}
	if conflict {
		usagePanic("SetFlag", KindFlag, string(name), ReasonFlagAlreadySet)
	}
	c.flags[name] = struct{}{}
}

// UnsetFlag lowers the flag in the nearest scope of self plus ancestors that
// has it set. A flag set only in a descendant is not reachable from here;
// finding none in the chain is a usage error.
func (c *Context) UnsetFlag(name FlagName) {
	c.ensureLive("UnsetFlag")
	for p := c; p != nil; p = p.parent {
		if _, ok := p.flags[name]; ok {
			delete(p.flags, name)
			return
		}
	}
	usagePanic("UnsetFlag", KindFlag, string(name), ReasonFlagNotSet)
}

// FlagIsSet reports whether the flag is set in this scope or any ancestor.
func (c *Context) FlagIsSet(name FlagName) bool {
	c.ensureLive("FlagIsSet")
	for p := c; p != nil; p = p.parent {
		if _, ok := p.flags[name]; ok {
			return true
		}
	}
	return false
}

// Post constructs a fresh Notification and delivers it to every matching
// observer in the poster's context-tree exactly once: local observers first
// (registration order), then descendants depth-first pre-order, then
// ancestors up to the root. Post cannot fail from the caller's perspective;
// delivery errors are logged and expired observers are pruned silently.
func (c *Context) Post(name NotificationName, payload any) {
	c.ensureLive("Post")
	n := newNotification(name, c, payload)
	c.walkDown(func(ctx *Context) bool {
		ctx.deliverLocal(n)
		return true
	})
	for p := c.parent; p != nil; p = p.parent {
		p.deliverLocal(n)
	}
}

// deliverLocal attempts delivery to this scope's observers for n.Name. The
// list is snapshotted first so observers registered during delivery do not
// receive the in-flight notification.
func (c *Context) deliverLocal(n Notification) {
	list := c.observers[n.Name]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*Observer, len(list))
	copy(snapshot, list)

	expired := map[*Observer]bool{}
	for _, obs := range snapshot {
		if obs.IsExpired() {
			expired[obs] = true
			c.logger.Debug("pruned expired observer of %q in scope %q", string(n.Name), c.name)
			continue
		}
		if !obs.IsObserving() {
			continue
		}
		if err := obs.Deliver(n); err != nil {
			c.logger.Warn("observer of %q in scope %q failed: %v", string(n.Name), c.name, err)
		}
	}
	if len(expired) == 0 {
		return
	}
	kept := c.observers[n.Name][:0]
	for _, obs := range c.observers[n.Name] {
		if !expired[obs] {
			kept = append(kept, obs)
		}
	}
	if len(kept) == 0 {
		delete(c.observers, n.Name)
	} else {
		c.observers[n.Name] = kept
	}
}
