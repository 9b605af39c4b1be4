package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t).WithGoals(1)
	db := b.Build()
	id := b.GoalIDs()[0]

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := fmt.Sprintf("2026-02-%02d", i+1)
			if _, _, err := db.ToggleLog(ctx, id, date, 1); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent toggle failed: %v", err)
	}
	g, err := db.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if g.Actual != 10 || len(g.Logs) != 10 {
		t.Fatalf("expected 10 check-ins, got actual=%v logs=%d", g.Actual, len(g.Logs))
	}
}
