package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bekzodm/dayplan/internal/models"
)

// ErrNotFound is returned when a record ID does not exist.
var ErrNotFound = errors.New("record not found")

// MemoryStore is an in-process implementation of every repository
// interface, guarded by a single RWMutex. All range filtering happens
// here so the analytics layer only ever sees in-window records.
type MemoryStore struct {
	mu sync.RWMutex

	categories    map[string]*models.FinanceCategory
	transactions  map[string]*models.FinanceTransaction
	workItems     map[string]*models.WorkItem
	exerciseTypes map[string]*models.ExerciseType
	sportSessions map[string]*models.SportSession
	sleepLogs     map[string]*models.SleepInterval
	habits        map[string]*models.HabitRecord
	taskTypes     map[string]*models.MindTaskType
	mindTasks     map[string]*models.MindTask
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories:    make(map[string]*models.FinanceCategory),
		transactions:  make(map[string]*models.FinanceTransaction),
		workItems:     make(map[string]*models.WorkItem),
		exerciseTypes: make(map[string]*models.ExerciseType),
		sportSessions: make(map[string]*models.SportSession),
		sleepLogs:     make(map[string]*models.SleepInterval),
		habits:        make(map[string]*models.HabitRecord),
		taskTypes:     make(map[string]*models.MindTaskType),
		mindTasks:     make(map[string]*models.MindTask),
	}
}

// dayStart truncates an instant to its calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// inRange reports whether t falls on any day of [start, end], end day
// fully included.
func inRange(t, start, end time.Time) bool {
	lo := dayStart(start)
	hi := dayStart(end).AddDate(0, 0, 1)
	return !t.Before(lo) && t.Before(hi)
}

func sameDay(a, b time.Time) bool {
	return dayStart(a).Equal(dayStart(b))
}

// --- DailyDataRepository ---

func (s *MemoryStore) SleepIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]models.SleepInterval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SleepInterval
	for _, v := range s.sleepLogs {
		if v.OwnerID == ownerID && inRange(v.Start, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) WorkItems(ctx context.Context, ownerID string, start, end time.Time) ([]models.WorkItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WorkItem
	for _, v := range s.workItems {
		if v.OwnerID == ownerID && inRange(v.Date, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) MindTasks(ctx context.Context, ownerID string, start, end time.Time) ([]models.MindTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MindTask
	for _, v := range s.mindTasks {
		if v.OwnerID == ownerID && inRange(v.Date, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) SportSessions(ctx context.Context, ownerID string, start, end time.Time) ([]models.SportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SportSession
	for _, v := range s.sportSessions {
		if v.OwnerID == ownerID && inRange(v.Date, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) HabitRecords(ctx context.Context, ownerID string, start, end time.Time) ([]models.HabitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.HabitRecord
	for _, v := range s.habits {
		if v.OwnerID == ownerID && inRange(v.Date, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) FinanceTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]models.FinanceTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.FinanceTransaction
	for _, v := range s.transactions {
		if v.OwnerID == ownerID && inRange(v.Date, start, end) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) MindTaskTypes(ctx context.Context, ownerID string) ([]models.MindTaskType, error) {
	return s.TaskTypes(ctx, ownerID)
}

// --- FinanceRepository ---

func (s *MemoryStore) CreateCategory(ctx context.Context, cat *models.FinanceCategory) (*models.FinanceCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	cp := *cat
	s.categories[cp.ID] = &cp
	return cat, nil
}

func (s *MemoryStore) Categories(ctx context.Context, ownerID string) ([]models.FinanceCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.FinanceCategory
	for _, v := range s.categories {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) CreateTransaction(ctx context.Context, tx *models.FinanceTransaction) (*models.FinanceTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	cp := *tx
	s.transactions[cp.ID] = &cp
	return tx, nil
}

func (s *MemoryStore) Transactions(ctx context.Context, ownerID string, limit, offset int) ([]models.FinanceTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.FinanceTransaction
	for _, v := range s.transactions {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) UpdateTransaction(ctx context.Context, id string, tx *models.FinanceTransaction) (*models.FinanceTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Amount = tx.Amount
	existing.Kind = tx.Kind
	existing.Frequency = tx.Frequency
	existing.CategoryID = tx.CategoryID
	existing.Description = tx.Description
	if !tx.Date.IsZero() {
		existing.Date = tx.Date
	}
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) AllTransactions(ctx context.Context, ownerID string) ([]models.FinanceTransaction, error) {
	return s.Transactions(ctx, ownerID, 0, 0)
}

// --- WorkRepository ---

func (s *MemoryStore) ItemsOnDay(ctx context.Context, ownerID string, day time.Time) ([]models.WorkItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WorkItem
	for _, v := range s.workItems {
		if v.OwnerID == ownerID && sameDay(v.Date, day) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, item *models.WorkItem) (*models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Date.IsZero() {
		item.Date = time.Now()
	}
	cp := *item
	s.workItems[cp.ID] = &cp
	return item, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.workItems, id)
	return nil
}

// --- HealthRepository ---

func (s *MemoryStore) CreateExerciseType(ctx context.Context, et *models.ExerciseType) (*models.ExerciseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if et.ID == "" {
		et.ID = uuid.New().String()
	}
	cp := *et
	s.exerciseTypes[cp.ID] = &cp
	return et, nil
}

func (s *MemoryStore) ExerciseTypes(ctx context.Context, ownerID string) ([]models.ExerciseType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ExerciseType
	for _, v := range s.exerciseTypes {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) UpdateExerciseType(ctx context.Context, id string, et *models.ExerciseType) (*models.ExerciseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.exerciseTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Name = et.Name
	existing.Description = et.Description
	existing.Sets = et.Sets
	existing.Reps = et.Reps
	existing.Active = et.Active
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) CreateSportSession(ctx context.Context, sess *models.SportSession) (*models.SportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Date.IsZero() {
		sess.Date = time.Now()
	}
	cp := *sess
	s.sportSessions[cp.ID] = &cp
	return sess, nil
}

func (s *MemoryStore) UpdateSportSession(ctx context.Context, id string, sess *models.SportSession) (*models.SportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sportSessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.ExerciseTypeID = sess.ExerciseTypeID
	existing.Completed = sess.Completed
	if !sess.Date.IsZero() {
		existing.Date = sess.Date
	}
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) SetSportSessionCompleted(ctx context.Context, id string, completed bool) (*models.SportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sportSessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Completed = completed
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) SportSessionHistory(ctx context.Context, ownerID string, limit int) ([]models.SportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SportSession
	for _, v := range s.sportSessions {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) LastSleepInterval(ctx context.Context, ownerID string) (*models.SleepInterval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var last *models.SleepInterval
	for _, v := range s.sleepLogs {
		if v.OwnerID != ownerID {
			continue
		}
		if last == nil || v.Start.After(last.Start) {
			last = v
		}
	}
	if last == nil {
		return nil, ErrNotFound
	}
	cp := *last
	return &cp, nil
}

func (s *MemoryStore) CreateSleepInterval(ctx context.Context, iv *models.SleepInterval) (*models.SleepInterval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	if iv.Start.IsZero() {
		iv.Start = time.Now()
	}
	cp := *iv
	s.sleepLogs[cp.ID] = &cp
	return iv, nil
}

func (s *MemoryStore) CloseSleepInterval(ctx context.Context, id string, end time.Time) (*models.SleepInterval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sleepLogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.End = &end
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) SleepHistory(ctx context.Context, ownerID string, limit int) ([]models.SleepInterval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SleepInterval
	for _, v := range s.sleepLogs {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) HabitOnDay(ctx context.Context, ownerID string, day time.Time) (*models.HabitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.habits {
		if v.OwnerID == ownerID && sameDay(v.Date, day) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpsertHabit(ctx context.Context, h *models.HabitRecord) (*models.HabitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.Date.IsZero() {
		h.Date = time.Now()
	}
	for _, v := range s.habits {
		if v.OwnerID == h.OwnerID && sameDay(v.Date, h.Date) {
			v.MealCount = h.MealCount
			v.MorningHygieneDone = h.MorningHygieneDone
			cp := *v
			return &cp, nil
		}
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	cp := *h
	s.habits[cp.ID] = &cp
	return h, nil
}

func (s *MemoryStore) HabitHistory(ctx context.Context, ownerID string, limit int) ([]models.HabitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.HabitRecord
	for _, v := range s.habits {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// --- MindRepository ---

func (s *MemoryStore) CreateTaskType(ctx context.Context, tt *models.MindTaskType) (*models.MindTaskType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tt.ID == "" {
		tt.ID = uuid.New().String()
	}
	cp := *tt
	s.taskTypes[cp.ID] = &cp
	return tt, nil
}

func (s *MemoryStore) TaskTypes(ctx context.Context, ownerID string) ([]models.MindTaskType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MindTaskType
	for _, v := range s.taskTypes {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *MemoryStore) UpdateTaskType(ctx context.Context, id string, tt *models.MindTaskType) (*models.MindTaskType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.taskTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Title = tt.Title
	existing.Description = tt.Description
	existing.Active = tt.Active
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) CreateTask(ctx context.Context, t *models.MindTask) (*models.MindTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	cp := *t
	s.mindTasks[cp.ID] = &cp
	return t, nil
}

func (s *MemoryStore) Tasks(ctx context.Context, ownerID string) ([]models.MindTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MindTask
	for _, v := range s.mindTasks {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) UpdateTask(ctx context.Context, id string, t *models.MindTask) (*models.MindTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.mindTasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.TaskTypeID = t.TaskTypeID
	existing.Completed = t.Completed
	if !t.Date.IsZero() {
		existing.Date = t.Date
	}
	cp := *existing
	return &cp, nil
}

func (s *MemoryStore) SetTaskCompleted(ctx context.Context, id string, completed bool) (*models.MindTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.mindTasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Completed = completed
	cp := *existing
	return &cp, nil
}
