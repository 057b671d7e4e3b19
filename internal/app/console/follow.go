package console

import (
	"context"
	"sync"

	"github.com/looplab/fsm"

	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// Follow states
const (
	StateFollowing = "following"
	StatePaused    = "paused"
)

// Follow events
const (
	eventLeaveBottom = "leave_bottom"
	eventReachBottom = "reach_bottom"
	eventJump        = "jump"
)

// FollowController tracks whether the view follows new entries. While
// following, every append and every filter change moves the view to the
// bottom; data arrival alone never pauses following.
type FollowController struct {
	machine *fsm.FSM
	log     logger.Logger

	mu     sync.RWMutex
	effect func()
}

// NewFollowController creates a controller in the following state
func NewFollowController(log logger.Logger) *FollowController {
	c := &FollowController{log: log}

	c.machine = fsm.NewFSM(
		StateFollowing,
		fsm.Events{
			{Name: eventLeaveBottom, Src: []string{StateFollowing}, Dst: StatePaused},
			{Name: eventReachBottom, Src: []string{StatePaused}, Dst: StateFollowing},
			{Name: eventJump, Src: []string{StatePaused}, Dst: StateFollowing},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if c.log != nil {
					c.log.Debug().Msgf("FOLLOW %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
				}
			},
			"enter_" + StateFollowing: func(ctx context.Context, e *fsm.Event) {
				if e.Event == eventJump {
					c.fireEffect()
				}
			},
		},
	)

	return c
}

// SetEffect sets the "move view to bottom" callback supplied by the
// presentation layer
func (c *FollowController) SetEffect(effect func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.effect = effect
}

// Following returns whether the controller is in the following state
func (c *FollowController) Following() bool {
	return c.machine.Current() == StateFollowing
}

// ViewportBottom consumes the boolean at-bottom signal from the view
func (c *FollowController) ViewportBottom(atBottom bool) {
	if atBottom {
		_ = c.machine.Event(context.Background(), eventReachBottom)
	} else {
		_ = c.machine.Event(context.Background(), eventLeaveBottom)
	}
}

// Jump resumes following and immediately moves the view to the bottom
func (c *FollowController) Jump() {
	if c.Following() {
		c.fireEffect()
		return
	}

	_ = c.machine.Event(context.Background(), eventJump)
}

// OnAppend moves the view to the bottom when following
func (c *FollowController) OnAppend() {
	if c.Following() {
		c.fireEffect()
	}
}

// OnFilterChanged moves the view to the bottom when following
func (c *FollowController) OnFilterChanged() {
	if c.Following() {
		c.fireEffect()
	}
}

func (c *FollowController) fireEffect() {
	c.mu.RLock()
	effect := c.effect
	c.mu.RUnlock()

	if effect != nil {
		effect()
	}
}
