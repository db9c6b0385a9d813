package fetch

import (
	"context"
	"strings"

	"go.uber.org/atomic"

	"github.com/five82/folio/internal/logger"
)

// Phase is the lifecycle position of a Controller.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (p Phase) Terminal() bool {
	return p == Success || p == Error
}

// State is the renderable outcome. Data is set only in Success, Message only
// in Error.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

// Loader performs the retrieval. It must honour ctx cancellation.
type Loader[T any] func(ctx context.Context) (T, error)

// Result is what a Task delivers back to the owning view. Token ties it to
// the Controller that issued it.
type Result[T any] struct {
	Token uint64
	Data  T
	Err   error
}

// Task runs the outstanding request. It blocks, so callers run it off the
// render loop (a tea.Cmd in the UI).
type Task[T any] func() Result[T]

var generations = atomic.NewUint64(0)

// Controller owns one retrieval for one mount.
type Controller[T any] struct {
	name     string
	token    uint64
	load     Loader[T]
	state    State[T]
	cancel   context.CancelFunc
	tornDown bool
	log      *logger.Logger
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	name string
	log  *logger.Logger
}

// WithName labels the controller in log entries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// New returns an Idle controller with a process-unique token.
func New[T any](load Loader[T], opts ...Option) *Controller[T] {
	o := options{name: "fetch", log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	return &Controller[T]{
		name:  o.name,
		token: generations.Inc(),
		load:  load,
		log:   o.log,
	}
}

// Token identifies results produced by this controller.
func (c *Controller[T]) Token() uint64 {
	return c.token
}

// State returns the current state.
func (c *Controller[T]) State() State[T] {
	return c.state
}

// Active reports whether the controller still accepts results.
func (c *Controller[T]) Active() bool {
	return !c.tornDown
}

// Start moves Idle to Loading and returns the task to run. It returns nil if
// the controller already started or was torn down.
func (c *Controller[T]) Start(ctx context.Context) Task[T] {
	if c.state.Phase != Idle || c.tornDown || c.load == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = State[T]{Phase: Loading}
	c.log.Debug().Str("fetch", c.name).Uint64("token", c.token).Msg("fetch started")

	token, load := c.token, c.load
	return func() Result[T] {
		data, err := load(reqCtx)
		return Result[T]{Token: token, Data: data, Err: err}
	}
}

// Apply settles the controller with res. Results from another controller,
// results arriving after Teardown, and results arriving outside Loading are
// dropped; Apply then returns false and nothing changes.
func (c *Controller[T]) Apply(res Result[T]) bool {
	if res.Token != c.token || c.tornDown || c.state.Phase != Loading {
		c.log.Debug().
			Str("fetch", c.name).
			Uint64("token", c.token).
			Uint64("result_token", res.Token).
			Bool("torn_down", c.tornDown).
			Stringer("phase", c.state.Phase).
			Msg("fetch result discarded")
		return false
	}

	if res.Err != nil {
		c.state = State[T]{Phase: Error, Message: errorMessage(res.Err)}
		c.log.Warn().Err(res.Err).Str("fetch", c.name).Uint64("token", c.token).Msg("fetch failed")
	} else {
		c.state = State[T]{Phase: Success, Data: res.Data}
		c.log.Debug().Str("fetch", c.name).Uint64("token", c.token).Msg("fetch succeeded")
	}
	c.release()
	return true
}

// Teardown detaches the controller from its view. The in-flight request, if
// any, is cancelled and its eventual result will be ignored.
func (c *Controller[T]) Teardown() {
	if c.tornDown {
		return
	}
	c.tornDown = true
	c.release()
	c.log.Debug().Str("fetch", c.name).Uint64("token", c.token).Stringer("phase", c.state.Phase).Msg("fetch torn down")
}

func (c *Controller[T]) release() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func errorMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "request failed"
	}
	return msg
}
