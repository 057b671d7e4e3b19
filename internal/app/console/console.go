package console

import (
	"sync"

	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// EventKind identifies the mutation a listener is notified about
type EventKind int

const (
	EventAppend EventKind = iota
	EventClear
	EventFilterChanged
)

// Event describes one console mutation
type Event struct {
	Kind  EventKind
	Entry Entry // set for EventAppend
}

// Listener receives console events synchronously after each mutation
type Listener func(Event)

// Console defines the debug console store: a bounded entry buffer with
// level/search filtering, auto-follow tracking, and change notification
type Console interface {
	Append(entry Entry)
	Clear()
	SetLevels(levels LevelSet)
	ToggleLevel(level Level)
	SetSearchTerm(term string)
	SetAutoScroll(atBottom bool)
	JumpToLatest()
	Snapshot() []Entry
	Visible() []Entry
	Filter() FilterState
	AutoScroll() bool
	AddListener(listener Listener)
}

// Options contains the initial console state supplied at construction
type Options struct {
	Capacity   int
	Levels     LevelSet
	SearchTerm string
	AutoScroll bool
}

// OptionsFromConfig derives console options from the application config
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	levels := make(LevelSet, len(cfg.Console.Levels))

	for _, name := range cfg.Console.Levels {
		level, err := ParseLevel(name)
		if err != nil {
			return Options{}, err
		}

		levels[level] = true
	}

	return Options{
		Capacity:   cfg.Console.Capacity,
		Levels:     levels,
		SearchTerm: cfg.Console.Search,
		AutoScroll: cfg.Console.AutoScroll,
	}, nil
}

// console implements the Console interface
type console struct {
	buffer *Buffer
	follow *FollowController
	log    logger.Logger

	mu        sync.RWMutex
	levels    LevelSet
	search    string
	listeners []Listener
	nextID    uint64
}

// New creates a console with the given options and follow controller
func New(opts Options, follow *FollowController, log logger.Logger) (Console, error) {
	buffer, err := NewBuffer(opts.Capacity)
	if err != nil {
		return nil, err
	}

	if !opts.AutoScroll {
		follow.ViewportBottom(false)
	}

	return &console{
		buffer: buffer,
		follow: follow,
		log:    log,
		levels: opts.Levels.Clone(),
		search: opts.SearchTerm,
		nextID: 1,
	}, nil
}

// Append stamps the entry with the next ID, stores it, and notifies
func (c *console) Append(entry Entry) {
	c.mu.Lock()
	entry.ID = c.nextID
	c.nextID++
	c.mu.Unlock()

	c.buffer.Append(entry)

	c.notify(Event{Kind: EventAppend, Entry: entry})
	c.follow.OnAppend()
}

// Clear wipes the buffer; filter and scroll state are untouched
func (c *console) Clear() {
	c.buffer.Clear()
	c.notify(Event{Kind: EventClear})
}

// SetLevels replaces the enabled severity set
func (c *console) SetLevels(levels LevelSet) {
	c.mu.Lock()
	c.levels = levels.Clone()
	c.mu.Unlock()

	c.notify(Event{Kind: EventFilterChanged})
	c.follow.OnFilterChanged()
}

// ToggleLevel flips a single severity in the enabled set
func (c *console) ToggleLevel(level Level) {
	c.mu.Lock()

	if c.levels.Has(level) {
		delete(c.levels, level)
	} else {
		c.levels[level] = true
	}

	c.mu.Unlock()

	c.notify(Event{Kind: EventFilterChanged})
	c.follow.OnFilterChanged()
}

// SetSearchTerm replaces the search term
func (c *console) SetSearchTerm(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()

	c.notify(Event{Kind: EventFilterChanged})
	c.follow.OnFilterChanged()
}

// SetAutoScroll reports whether the view sits at the bottom threshold
func (c *console) SetAutoScroll(atBottom bool) {
	c.follow.ViewportBottom(atBottom)
}

// JumpToLatest resumes following and moves the view to the latest entry
func (c *console) JumpToLatest() {
	c.follow.Jump()
}

// Snapshot returns the full retained buffer, oldest first
func (c *console) Snapshot() []Entry {
	return c.buffer.Snapshot()
}

// Visible returns the filtered subsequence of the buffer
func (c *console) Visible() []Entry {
	return Visible(c.buffer.Snapshot(), c.Filter())
}

// Filter returns a copy of the current filter state
func (c *console) Filter() FilterState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return FilterState{
		Levels:     c.levels.Clone(),
		SearchTerm: c.search,
	}
}

// AutoScroll returns whether the console is in the following state
func (c *console) AutoScroll() bool {
	return c.follow.Following()
}

// AddListener registers a listener; listeners run synchronously, in
// registration order, after each mutation
func (c *console) AddListener(listener Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, listener)
}

func (c *console) notify(event Event) {
	c.mu.RLock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}
