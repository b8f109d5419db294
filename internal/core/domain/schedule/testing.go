package schedule

import (
	"context"
	"schedtext/internal/core/domain/recurrence"
	"sync"
	"time"
)

type TestScheduleRepository struct {
	CreateError error
	ReadError   error
	DeleteError error
	Schedules   []Schedule
	ReadWith    []ReadOptions
	nextID      ID
	lock        sync.Mutex
}

func NewTestScheduleRepository() *TestScheduleRepository {
	return &TestScheduleRepository{}
}

func (r *TestScheduleRepository) Create(ctx context.Context, input CreateInput) (s Schedule, err error) {
	if r.CreateError != nil {
		return s, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Schedules {
		if existing.Name == input.Name {
			return s, ErrScheduleNameTaken
		}
	}
	r.nextID++
	s = Schedule{
		ID:        r.nextID,
		Name:      input.Name,
		Query:     input.Query,
		Result:    input.Result,
		CreatedAt: input.CreatedAt,
	}
	r.Schedules = append(r.Schedules, s)
	return s, nil
}

func (r *TestScheduleRepository) GetByID(ctx context.Context, id ID) (s Schedule, err error) {
	if r.ReadError != nil {
		return s, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Schedules {
		if existing.ID == id {
			return existing, nil
		}
	}
	return s, ErrScheduleDoesNotExist
}

func (r *TestScheduleRepository) Read(ctx context.Context, options ReadOptions) ([]Schedule, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	return r.Schedules, nil
}

func (r *TestScheduleRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReadError != nil {
		return 0, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.Schedules)), nil
}

func (r *TestScheduleRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Schedules {
		if existing.ID == id {
			r.Schedules = append(r.Schedules[:ix], r.Schedules[ix+1:]...)
			return nil
		}
	}
	return ErrScheduleDoesNotExist
}

type TestPublisher struct {
	Published []Schedule
	Error     error
	lock      sync.Mutex
}

func NewTestPublisher() *TestPublisher {
	return &TestPublisher{}
}

func (p *TestPublisher) PublishSchedule(ctx context.Context, s Schedule) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, s)
	return nil
}

type TestParseCache struct {
	Results  map[string]recurrence.Result
	GetError error
	SetError error
	lock     sync.Mutex
}

func NewTestParseCache() *TestParseCache {
	return &TestParseCache{Results: make(map[string]recurrence.Result)}
}

func (c *TestParseCache) Get(ctx context.Context, text string) (result recurrence.Result, err error) {
	if c.GetError != nil {
		return result, c.GetError
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	result, ok := c.Results[text]
	if !ok {
		return result, ErrCacheMiss
	}
	return result, nil
}

func (c *TestParseCache) Set(ctx context.Context, text string, result recurrence.Result) error {
	if c.SetError != nil {
		return c.SetError
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Results[text] = result
	return nil
}

type StubParser struct {
	Result recurrence.Result
	Err    error
	Calls  []string
	lock   sync.Mutex
}

func NewStubParser(result recurrence.Result) *StubParser {
	return &StubParser{Result: result}
}

func (p *StubParser) Parse(ctx context.Context, text string, now time.Time) (recurrence.Result, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Calls = append(p.Calls, text)
	return p.Result, p.Err
}
