package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/report"
)

type ReportRepository struct {
	mu     sync.RWMutex
	items  map[int]report.Report
	byRace map[int]int
	nextID int
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		items:  make(map[int]report.Report),
		byRace: make(map[int]int),
		nextID: 1,
	}
}

// Create rejects a second report for the same race and assigns the
// next monotonic report ID, all under one lock. The counter advances
// only on success.
func (r *ReportRepository) Create(_ context.Context, item report.Report) (report.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRace[item.RaceID]; exists {
		return report.Report{}, fmt.Errorf("%w: race=%d", report.ErrDuplicateRace, item.RaceID)
	}

	item.ID = r.nextID
	r.items[item.ID] = cloneReport(item)
	r.byRace[item.RaceID] = item.ID
	r.nextID++

	return item, nil
}

func (r *ReportRepository) GetByID(_ context.Context, reportID int) (report.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[reportID]
	if !ok {
		return report.Report{}, false, nil
	}

	return cloneReport(item), true, nil
}

// Reports are immutable after creation; cloning keeps callers from
// mutating the stored copy through shared slices or maps.
func cloneReport(item report.Report) report.Report {
	copied := item
	copied.KeyIncidents = append([]string(nil), item.KeyIncidents...)
	if item.TeamAnalysis != nil {
		copied.TeamAnalysis = make(map[string]string, len(item.TeamAnalysis))
		for name, analysis := range item.TeamAnalysis {
			copied.TeamAnalysis[name] = analysis
		}
	}
	return copied
}
