package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolExecutesTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	var count int64
	var wg sync.WaitGroup

	const tasks = 100
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		pool.Run(func() {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
	}
	wg.Wait()

	if count != tasks {
		t.Errorf("执行任务数 = %d, want %d", count, tasks)
	}
}

// 队列满时Run在调用方goroutine内联执行，任务不丢失
func TestWorkerPoolRunInlineWhenFull(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Start()
	defer pool.Stop()

	// 占住唯一的worker并填满队列
	block := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Run(func() { defer wg.Done(); <-block })
	for pool.Submit(func() {}) {
	}

	done := make(chan struct{})
	go func() {
		pool.Run(func() {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("队列满时Run不应阻塞")
	}

	close(block)
	wg.Wait()
}

// 已停止的工作池拒绝新任务，Run退化为内联执行而不是panic
func TestWorkerPoolRunAfterStop(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	pool.Stop()

	if pool.Submit(func() {}) {
		t.Error("停止后Submit应返回false")
	}

	executed := false
	pool.Run(func() { executed = true })
	if !executed {
		t.Error("停止后Run应内联执行任务")
	}
}

func TestWorkerPoolStopIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	pool.Stop()
	pool.Stop()
}
